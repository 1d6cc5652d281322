package rest

import (
	"github.com/kbukum/restfulcore/httpclient"
)

// Player is the domain type used across the package tests.
type Player struct {
	ID   int64  `json:"playerId"`
	Name string `json:"playerName"`
}

func (p *Player) FromJSON(f Fields) (err error) {
	if p.ID, err = f.Int64("playerId"); err != nil {
		return err
	}
	p.Name, err = f.String("playerName")
	return err
}

// PlayerForm uploads a player with an avatar.
type PlayerForm struct {
	Player
	Avatar []byte
}

func (f PlayerForm) MultipartBody() (*httpclient.MultipartBody, error) {
	return httpclient.NewMultipartBody().
		Add("playerName", f.Name).
		AddFile("avatar", "avatar.png", "image/png", f.Avatar), nil
}

// Criteria is a query body.
type Criteria struct {
	NameLike string `json:"nameLike"`
}
