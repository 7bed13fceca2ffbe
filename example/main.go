package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxudp-go"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	host       = flag.String("h", "127.0.0.1", "Remote host name")
	port       = flag.Int("p", 30001, "Remote port")
	localPort  = flag.Int("l", 30002, "Local port")
	listenHost = flag.String("f", "", "Accept records only from this host")
	message    = flag.String("m", "", "Send message")
	t          = flag.String("t", "", "Trace level.")
	w          = flag.Int("w", 1000, "WaitTime in milliseconds.")
	lang       = flag.String("lang", "", "Used language.")
)

// Message is the record sent between the peers.
type Message struct {
	Sequence int32
	Sent     int64
	Text     [64]byte
}

func CurrentLanguage() language.Tag {
	langEnv := os.Getenv("LANG")
	if langEnv == "" {
		return language.AmericanEnglish
	}
	langEnv = strings.Split(langEnv, ".")[0]
	tag, err := language.Parse(langEnv)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func main() {
	flag.Parse()
	if *message == "" {
		flag.PrintDefaults()
		return
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	logger := gxudp.NewLogger()
	logger.AddSink(gxudp.LevelLow, gxudp.NewZapSink(zl))
	logger.Start(100 * time.Millisecond)
	defer func() {
		_ = logger.Terminate()
	}()

	media, err := gxudp.NewTransceiver[Message]()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	tag := CurrentLanguage()
	if *lang != "" {
		tag, err = language.Parse(*lang)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error parsing language:", err)
			return
		}
	}
	for _, s := range []*gxudp.Socket{media.SenderSocket(), media.ReceiverSocket()} {
		s.Localize(tag)
		s.SetOnTrace(logger.TraceHandler(gxudp.LevelLow))
		s.SetOnError(func(s *gxudp.Socket, err error) {
			logger.Logf(gxudp.LevelHighest, "%s: %v", s, err)
		})
		s.SetOnMediaStateChange(func(s *gxudp.Socket, e gxcommon.MediaStateEventArgs) {
			fmt.Printf("Media state change : %s\n", e.State().String())
		})
		if *t != "" {
			tl, err := gxcommon.TraceLevelParse(*t)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				return
			}
			s.SetTrace(tl)
		}
	}

	received := make(chan Message, 1)
	media.SetOnDataReceived(func(m Message) {
		select {
		case received <- m:
		default:
		}
	})

	fmt.Printf("Remote: %s:%d\n", *host, *port)
	fmt.Printf("Local port: %d\n", *localPort)
	fmt.Printf("Message: '%s'\n", *message)

	err = media.Open(*host, *port, *localPort, *listenHost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error returned:", err)
		return
	}
	//Close the connection.
	defer func() {
		if err := media.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close failed:", err)
		}
	}()

	var m Message
	m.Sequence = 1
	m.Sent = time.Now().UnixNano()
	gxudp.SetText(m.Text[:], *message)
	if _, err = media.Send(m); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	select {
	case r := <-received:
		fmt.Printf("Received %d: %s (%v)\n", r.Sequence, gxudp.Text(r.Text[:]),
			time.Duration(time.Now().UnixNano()-r.Sent))
	case <-time.After(time.Duration(*w) * time.Millisecond):
		fmt.Printf("Nothing received in %d ms\n", *w)
	}
	fmt.Printf("Exit\n")
}
