package gxudp

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// GetSettings returns the socket settings as XML elements.
// Default values are not written.
func (s *Socket) GetSettings() string {
	var b strings.Builder
	if s.RemoteHost != "" {
		fmt.Fprintf(&b, "<IP>%s</IP>\n", xmlEscape(s.RemoteHost))
	}
	if s.RemotePort != 0 {
		fmt.Fprintf(&b, "<Port>%d</Port>\n", s.RemotePort)
	}
	if s.LocalPort != 0 {
		fmt.Fprintf(&b, "<LocalPort>%d</LocalPort>\n", s.LocalPort)
	}
	if s.ListenAddress != "" {
		fmt.Fprintf(&b, "<Listen>%s</Listen>\n", xmlEscape(s.ListenAddress))
	}
	if s.AllowedHost != "" {
		fmt.Fprintf(&b, "<Allowed>%s</Allowed>\n", xmlEscape(s.AllowedHost))
	}
	if s.UseIPv6 {
		b.WriteString("<IPv6>1</IPv6>\n")
	}
	if s.Broadcast {
		b.WriteString("<Broadcast>1</Broadcast>\n")
	}
	return b.String()
}

// SetSettings reads the socket settings from XML elements written by GetSettings.
// Unknown elements are ignored.
func (s *Socket) SetSettings(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	dec := xml.NewDecoder(strings.NewReader("<root>" + value + "</root>"))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local == "root" {
			continue
		}
		var v string
		if err := dec.DecodeElement(&v, &se); err != nil {
			return err
		}
		v = strings.TrimSpace(v)
		switch se.Name.Local {
		case "IP":
			s.RemoteHost = v
		case "Port":
			if n, err := strconv.Atoi(v); err == nil {
				s.RemotePort = n
			}
		case "LocalPort":
			if n, err := strconv.Atoi(v); err == nil {
				s.LocalPort = n
			}
		case "Listen":
			s.ListenAddress = v
		case "Allowed":
			s.AllowedHost = v
		case "IPv6":
			s.UseIPv6 = v == "1"
		case "Broadcast":
			s.Broadcast = v == "1"
		}
	}
	return nil
}
