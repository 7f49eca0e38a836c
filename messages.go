package gxnet

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

func init() {
	// English
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_failed", "Connection failed: %v")
	message.SetString(language.AmericanEnglish, "msg.count_or_eop", "Either Count or EOP must be set")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s:%d failed: %v")
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "%s connecting to %s:%d timeout %d ms")
	message.SetString(language.AmericanEnglish, "msg.server_settings", "%s server listening port %d")
	message.SetString(language.AmericanEnglish, "msg.client_connected", "Client %s connected")
	message.SetString(language.AmericanEnglish, "msg.client_disconnected", "Client %s disconnected")
	message.SetString(language.AmericanEnglish, "msg.client_rejected", "Client %s rejected")
	message.SetString(language.AmericanEnglish, "msg.max_clients", "Maximum client count %d reached. Client %s rejected")
	message.SetString(language.AmericanEnglish, "msg.peer_closed", "Connection closed by %s")
	message.SetString(language.AmericanEnglish, "msg.accept_failed", "Accepting client failed: %v")
	message.SetString(language.AmericanEnglish, "msg.invalid_port", "Invalid port %d")
	message.SetString(language.AmericanEnglish, "msg.invalid_host", "Host name is not set")

	// German
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s:%d wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s:%d wurde geschlossen")
	message.SetString(language.German, "msg.connection_failed", "Verbindung fehlgeschlagen: %v")
	message.SetString(language.German, "msg.count_or_eop", "Entweder Count oder EOP muss gesetzt sein")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s:%d")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s:%d fehlgeschlagen: %v")
	message.SetString(language.German, "msg.connecting_to", "%s verbindet sich mit %s:%d timeout %d ms")
	message.SetString(language.German, "msg.server_settings", "%s-Server lauscht auf Port %d")
	message.SetString(language.German, "msg.client_connected", "Client %s verbunden")
	message.SetString(language.German, "msg.client_disconnected", "Client %s getrennt")
	message.SetString(language.German, "msg.client_rejected", "Client %s abgelehnt")
	message.SetString(language.German, "msg.max_clients", "Maximale Anzahl von %d Clients erreicht. Client %s abgelehnt")
	message.SetString(language.German, "msg.peer_closed", "Verbindung von %s geschlossen")
	message.SetString(language.German, "msg.accept_failed", "Annahme des Clients fehlgeschlagen: %v")
	message.SetString(language.German, "msg.invalid_port", "Ungültiger Port %d")
	message.SetString(language.German, "msg.invalid_host", "Hostname ist nicht gesetzt")

	// Finnish
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connection_failed", "Yhteyden muodostus epäonnistui: %v")
	message.SetString(language.Finnish, "msg.count_or_eop", "Joko Count tai EOP on asetettava")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s:%d epäonnistui: %v")
	message.SetString(language.Finnish, "msg.connecting_to", "%s yhdistetään kohteeseen %s:%d timeout %d ms")
	message.SetString(language.Finnish, "msg.server_settings", "%s palvelin kuuntelee porttia %d")
	message.SetString(language.Finnish, "msg.client_connected", "Asiakas %s yhdistetty")
	message.SetString(language.Finnish, "msg.client_disconnected", "Asiakkaan %s yhteys katkaistu")
	message.SetString(language.Finnish, "msg.client_rejected", "Asiakas %s hylätty")
	message.SetString(language.Finnish, "msg.max_clients", "Asiakkaiden enimmäismäärä %d saavutettu. Asiakas %s hylätty")
	message.SetString(language.Finnish, "msg.peer_closed", "%s sulki yhteyden")
	message.SetString(language.Finnish, "msg.accept_failed", "Asiakkaan hyväksyminen epäonnistui: %v")
	message.SetString(language.Finnish, "msg.invalid_port", "Virheellinen portti %d")
	message.SetString(language.Finnish, "msg.invalid_host", "Palvelimen nimeä ei ole asetettu")

	// Swedish
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s:%d")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s:%d")
	message.SetString(language.Swedish, "msg.connection_failed", "Anslutningen misslyckades: %v")
	message.SetString(language.Swedish, "msg.count_or_eop", "Antingen Count eller EOP måste anges")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s:%d")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s:%d misslyckades: %v")
	message.SetString(language.Swedish, "msg.connecting_to", "%s ansluter till %s:%d timeout %d ms")
	message.SetString(language.Swedish, "msg.server_settings", "%s-server lyssnar på port %d")
	message.SetString(language.Swedish, "msg.client_connected", "Klient %s ansluten")
	message.SetString(language.Swedish, "msg.client_disconnected", "Klient %s frånkopplad")
	message.SetString(language.Swedish, "msg.client_rejected", "Klient %s avvisad")
	message.SetString(language.Swedish, "msg.max_clients", "Maximalt antal klienter %d uppnått. Klient %s avvisad")
	message.SetString(language.Swedish, "msg.peer_closed", "Anslutningen stängdes av %s")
	message.SetString(language.Swedish, "msg.accept_failed", "Det gick inte att ta emot klienten: %v")
	message.SetString(language.Swedish, "msg.invalid_port", "Ogiltig port %d")
	message.SetString(language.Swedish, "msg.invalid_host", "Värdnamnet är inte angivet")

	// Spanish
	message.SetString(language.Spanish, "msg.closing_connection", "Cerrando conexión con %s:%d")
	message.SetString(language.Spanish, "msg.connection_closed", "Conexión cerrada con %s:%d")
	message.SetString(language.Spanish, "msg.connection_failed", "Error de conexión: %v")
	message.SetString(language.Spanish, "msg.count_or_eop", "Se debe establecer Count o EOP")
	message.SetString(language.Spanish, "msg.connected_to", "Conectado a %s:%d")
	message.SetString(language.Spanish, "msg.connect_failed", "Error al conectar con %s:%d: %v")
	message.SetString(language.Spanish, "msg.connecting_to", "%s conectando a %s:%d timeout %d ms")
	message.SetString(language.Spanish, "msg.server_settings", "Servidor %s escuchando en el puerto %d")
	message.SetString(language.Spanish, "msg.client_connected", "Cliente %s conectado")
	message.SetString(language.Spanish, "msg.client_disconnected", "Cliente %s desconectado")
	message.SetString(language.Spanish, "msg.client_rejected", "Cliente %s rechazado")
	message.SetString(language.Spanish, "msg.max_clients", "Se alcanzó el número máximo de clientes %d. Cliente %s rechazado")
	message.SetString(language.Spanish, "msg.peer_closed", "Conexión cerrada por %s")
	message.SetString(language.Spanish, "msg.accept_failed", "Error al aceptar el cliente: %v")
	message.SetString(language.Spanish, "msg.invalid_port", "Puerto no válido %d")
	message.SetString(language.Spanish, "msg.invalid_host", "El nombre de host no está establecido")

	// Estonian
	message.SetString(language.Estonian, "msg.closing_connection", "Suletakse ühendus sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connection_closed", "Ühendus suleti sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connection_failed", "Ühendus ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.count_or_eop", "Count või EOP peab olema määratud")
	message.SetString(language.Estonian, "msg.connected_to", "Ühendatud sihtkohta %s:%d")
	message.SetString(language.Estonian, "msg.connect_failed", "Ühendamine sihtkohta %s:%d ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.connecting_to", "%s ühendatakse sihtkohta %s:%d timeout %d ms")
	message.SetString(language.Estonian, "msg.server_settings", "%s server kuulab porti %d")
	message.SetString(language.Estonian, "msg.client_connected", "Klient %s ühendatud")
	message.SetString(language.Estonian, "msg.client_disconnected", "Klient %s lahti ühendatud")
	message.SetString(language.Estonian, "msg.client_rejected", "Klient %s tagasi lükatud")
	message.SetString(language.Estonian, "msg.max_clients", "Klientide maksimaalne arv %d on täis. Klient %s tagasi lükatud")
	message.SetString(language.Estonian, "msg.peer_closed", "%s sulges ühenduse")
	message.SetString(language.Estonian, "msg.accept_failed", "Kliendi vastuvõtmine ebaõnnestus: %v")
	message.SetString(language.Estonian, "msg.invalid_port", "Vigane port %d")
	message.SetString(language.Estonian, "msg.invalid_host", "Hostinimi pole määratud")
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (g *GXNet) Localize(language language.Tag) {
	p := message.NewPrinter(language)
	g.mu.Lock()
	g.p = p
	g.mu.Unlock()
}

// msg returns the localized message.
func (g *GXNet) msg(key string, a ...any) string {
	g.mu.RLock()
	p := g.p
	g.mu.RUnlock()
	return p.Sprintf(key, a...)
}
