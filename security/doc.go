// Package security holds the TLS settings a REST connection uses to trust a
// private CA or present a client certificate.
//
//	connection:
//	  base_url: https://players.internal/
//	  tls:
//	    ca_file: /etc/players/ca.pem
//	    cert_file: /etc/players/client.pem
//	    key_file: /etc/players/client-key.pem
package security
