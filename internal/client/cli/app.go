// Package cli implements the interactive terminal client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avoronov/authgate/internal/client/api"
	"github.com/avoronov/authgate/internal/shared"
)

type App struct {
	client *api.Client
	in     *bufio.Reader
	out    io.Writer

	token string
}

func NewApp(client *api.Client, in io.Reader, out io.Writer) *App {
	return &App{client: client, in: bufio.NewReader(in), out: out}
}

// Run reads commands until quit or EOF.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "commands: register, login, get, quit")

	for {
		cmd, err := GetSimpleText(a.in, a.out, "command")
		if err != nil {
			return err
		}

		switch strings.ToLower(cmd) {
		case "register":
			err = a.register(ctx)
		case "login":
			err = a.login(ctx)
		case "get":
			err = a.getUser(ctx)
		case "quit", "exit", "":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
			continue
		}

		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) {
				fmt.Fprintln(a.out, apiErr.Msg)
				continue
			}
			return err
		}
	}
}

func (a *App) register(ctx context.Context) error {
	name, err := GetSimpleText(a.in, a.out, "name")
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.in, a.out, "email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)
	confirm, err := GetPassword(a.out, "confirm password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	msg, err := a.client.Register(ctx, name, email, string(password), string(confirm))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.in, a.out, "email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "password")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.token = token
	fmt.Fprintln(a.out, "logged in")
	return nil
}

func (a *App) getUser(ctx context.Context) error {
	if a.token == "" {
		fmt.Fprintln(a.out, "log in first")
		return nil
	}

	id, err := GetSimpleText(a.in, a.out, "user id")
	if err != nil {
		return err
	}

	user, err := a.client.GetUser(ctx, a.token, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> registered %s\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
