package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type ChatCmd struct {
	Message string `arg:"" optional:"" help:"One-shot message; omit for an interactive session."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	sess, err := ctx.requireSession()
	if err != nil {
		return err
	}

	if c.Message != "" {
		reply, err := ctx.Gateway.SendChat(context.Background(), sess.Username, c.Message)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	fmt.Println("Chatting with the mood assistant. Empty line or Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			break
		}

		reply, err := ctx.Gateway.SendChat(context.Background(), sess.Username, message)
		if err != nil {
			return err
		}
		fmt.Printf("assistant> %s\n", reply)
	}
	return scanner.Err()
}
