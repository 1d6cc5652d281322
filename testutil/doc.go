// Package testutil provides a scripted fake REST server for tests.
//
// Server is a gin engine behind httptest. Replies are scripted per method and
// path; every request is recorded so tests can assert on what was sent:
//
//	srv := testutil.NewServer(t)
//	srv.Reply(http.MethodGet, "/players/1/", http.StatusOK, `{"playerId":1,"playerName":"Mickey Mouse"}`)
//
//	conn, _ := rest.Dial(srv.Root())
//	res, err := rest.Get[Player](ctx, conn, "players", "1")
//
//	req, _ := srv.LastRequest()
//	// req.Header.Get("Accept") == "application/json"
//
// Unscripted routes answer 404 with body "no route".
package testutil
