package tnyuapi

import (
	"github.com/techatnyu/tnyu/pkg/jsonapi"
)

type Team struct {
	record
}

func newTeam(client *Client, data jsonapi.Resource) *Team {
	return &Team{newRecord(client, Teams, data)}
}
