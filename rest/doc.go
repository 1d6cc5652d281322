// Package rest is a generic REST client core.
//
// A Connection issues requests against one root URL and decodes JSON
// responses into caller-supplied types. A type takes part by implementing
// FromJSON on its pointer:
//
//	type Player struct {
//	    ID   int64  `json:"playerId"`
//	    Name string `json:"playerName"`
//	}
//
//	func (p *Player) FromJSON(f rest.Fields) (err error) {
//	    if p.ID, err = f.Int64("playerId"); err != nil {
//	        return err
//	    }
//	    p.Name, err = f.String("playerName")
//	    return err
//	}
//
// Every operation returns a Result carrying one of three outcomes: a
// decoded value, an empty success (202/204), or a failure. The error return
// is non-nil exactly when the outcome is a failure, and the Result's Notes
// explain what happened during that call:
//
//	res, err := rest.Get[Player](ctx, conn, "api/players", "1")
//	if err != nil {
//	    log.Println(res.Notes)
//	}
//
// Each blocking operation has a callback twin (GetAsync, ListAsync, ...)
// built on the single Async adapter.
package rest
