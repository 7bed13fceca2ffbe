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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.opening", "Opening %s socket %s:%d target %s:%d")
	message.SetString(language.AmericanEnglish, "msg.opened", "Socket opened at %s")
	message.SetString(language.AmericanEnglish, "msg.open_failed", "Open failed: %v")
	message.SetString(language.AmericanEnglish, "msg.closing", "Closing socket %s")
	message.SetString(language.AmericanEnglish, "msg.closed", "Socket closed %s")
	message.SetString(language.AmericanEnglish, "msg.receive_failed", "Receive failed: %v")
	message.SetString(language.AmericanEnglish, "msg.handler_failed", "Received handler failed: %v")
	message.SetString(language.AmericanEnglish, "msg.discarded", "Datagram from %s discarded")
	message.SetString(language.AmericanEnglish, "msg.size_mismatch", "Datagram of %d bytes dropped, record size is %d")

	// --- German (de) ---
	message.SetString(language.German, "msg.opening", "%s Socket %s:%d wird geöffnet, Ziel %s:%d")
	message.SetString(language.German, "msg.opened", "Socket geöffnet an %s")
	message.SetString(language.German, "msg.open_failed", "Öffnen fehlgeschlagen: %v")
	message.SetString(language.German, "msg.closing", "Socket %s wird geschlossen")
	message.SetString(language.German, "msg.closed", "Socket %s wurde geschlossen")
	message.SetString(language.German, "msg.receive_failed", "Empfang fehlgeschlagen: %v")
	message.SetString(language.German, "msg.handler_failed", "Empfangs-Handler fehlgeschlagen: %v")
	message.SetString(language.German, "msg.discarded", "Datagramm von %s verworfen")
	message.SetString(language.German, "msg.size_mismatch", "Datagramm mit %d Bytes verworfen, Datensatzgröße ist %d")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.opening", "Avataan %s soketti %s:%d kohde %s:%d")
	message.SetString(language.Finnish, "msg.opened", "Soketti avattu osoitteeseen %s")
	message.SetString(language.Finnish, "msg.open_failed", "Avaaminen epäonnistui: %v")
	message.SetString(language.Finnish, "msg.closing", "Suljetaan soketti %s")
	message.SetString(language.Finnish, "msg.closed", "Soketti suljettu %s")
	message.SetString(language.Finnish, "msg.receive_failed", "Vastaanotto epäonnistui: %v")
	message.SetString(language.Finnish, "msg.handler_failed", "Vastaanottokäsittelijä epäonnistui: %v")
	message.SetString(language.Finnish, "msg.discarded", "Datagrammi osoitteesta %s hylätty")
	message.SetString(language.Finnish, "msg.size_mismatch", "%d tavun datagrammi hylätty, tietueen koko on %d")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.opening", "Öppnar %s-socket %s:%d mål %s:%d")
	message.SetString(language.Swedish, "msg.opened", "Socket öppnad på %s")
	message.SetString(language.Swedish, "msg.open_failed", "Öppning misslyckades: %v")
	message.SetString(language.Swedish, "msg.closing", "Stänger socket %s")
	message.SetString(language.Swedish, "msg.closed", "Socket stängd %s")
	message.SetString(language.Swedish, "msg.receive_failed", "Mottagning misslyckades: %v")
	message.SetString(language.Swedish, "msg.handler_failed", "Mottagningshanteraren misslyckades: %v")
	message.SetString(language.Swedish, "msg.discarded", "Datagram från %s kasserat")
	message.SetString(language.Swedish, "msg.size_mismatch", "Datagram på %d byte kasserat, poststorlek är %d")

	// --- Spanish (es) ---
	message.SetString(language.Spanish, "msg.opening", "Abriendo socket %s %s:%d destino %s:%d")
	message.SetString(language.Spanish, "msg.opened", "Socket abierto en %s")
	message.SetString(language.Spanish, "msg.open_failed", "Error al abrir: %v")
	message.SetString(language.Spanish, "msg.closing", "Cerrando socket %s")
	message.SetString(language.Spanish, "msg.closed", "Socket cerrado %s")
	message.SetString(language.Spanish, "msg.receive_failed", "Error de recepción: %v")
	message.SetString(language.Spanish, "msg.handler_failed", "Error en el manejador de recepción: %v")
	message.SetString(language.Spanish, "msg.discarded", "Datagrama de %s descartado")
	message.SetString(language.Spanish, "msg.size_mismatch", "Datagrama de %d bytes descartado, el tamaño del registro es %d")

	// --- Estonian (et) ---
	message.SetString(language.Estonian, "msg.opening", "Avatakse %s sokkel %s:%d siht %s:%d")
	message.SetString(language.Estonian, "msg.opened", "Sokkel avatud aadressil %s")
	message.SetString(language.Estonian, "msg.open_failed", "Avamine ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.closing", "Suletakse sokkel %s")
	message.SetString(language.Estonian, "msg.closed", "Sokkel suleti %s")
	message.SetString(language.Estonian, "msg.receive_failed", "Vastuvõtt ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.handler_failed", "Vastuvõtu käsitleja ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.discarded", "Datagramm aadressilt %s hüljati")
	message.SetString(language.Estonian, "msg.size_mismatch", "%d baidine datagramm hüljati, kirje suurus on %d")
}
