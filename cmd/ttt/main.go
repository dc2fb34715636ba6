package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang-tictactoe/internal/adapters/output/memory"
	"golang-tictactoe/internal/application"
	"golang-tictactoe/internal/domain"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "ttt",
		Usage: "play channel tic-tac-toe from the terminal, one \"user: command\" per line",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "channel", Value: "console", Usage: "channel id the game is bound to"},
			&cli.IntFlag{Name: "cooldown", Value: int64(application.DefaultRestartCooldown / time.Second), Usage: "restart cooldown in seconds"},
			&cli.BoolFlag{Name: "debug", Usage: "log dispatched commands"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			service := application.NewCommandService(
				memory.NewMemorySessionStore(0),
				memory.NewGameRecordRepository(),
				application.DefaultTrigger,
				time.Duration(cmd.Int("cooldown"))*time.Second,
			)
			c := &console{service: service, channel: cmd.String("channel"), out: os.Stdout}
			return c.run(ctx, os.Stdin)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatalln(err)
	}
}

type console struct {
	service *application.CommandService
	channel string
	out     io.Writer
}

// run dispatches every "user: text" line until EOF or cancellation
func (c *console) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.print(c.handle(line))
	}
	return scanner.Err()
}

func (c *console) handle(line string) *domain.Response {
	user, text, found := strings.Cut(line, ":")
	if !found {
		return nil
	}
	user = strings.TrimSpace(user)
	return c.service.Process(map[string]string{
		application.ParamChannelID:   c.channel,
		application.ParamChannelName: c.channel,
		application.ParamUserID:      user,
		application.ParamUserName:    user,
		application.ParamCommand:     c.service.Trigger(),
		application.ParamText:        strings.TrimSpace(text),
	})
}

func (c *console) print(response *domain.Response) {
	switch {
	case response == nil:
		fmt.Fprintln(c.out, color.New(color.FgRed).Render("(no response)"))
	case response.IsPublic():
		fmt.Fprintln(c.out, color.New(color.FgGreen).Render(response.Text))
	default:
		fmt.Fprintln(c.out, color.New(color.FgGray).Render(response.Text))
	}
}
