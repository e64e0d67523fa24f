package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vamsidulam/exameval/services/examapi"
)

func (cli *commandLine) login(username, password string) error {
	ctx := context.Background()
	tok, err := cli.client.Login(ctx, examapi.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	if err := cli.sess.SetToken(tok.AccessToken, username); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", username)
	return nil
}

// warnIfExpired nags before a request hits a 401 instead of after.
func (cli *commandLine) warnIfExpired() {
	if err := cli.sess.CheckExpiry(time.Now()); err != nil {
		fmt.Printf("warning: %s (run `login` again)\n", err)
	}
}
