package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/bright-road/internal/app/conversation"
	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

var chatVerbose bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the travel assistant in the terminal",
	Long: `Opens one assistant session on the terminal. Blank lines are ignored,
/quit ends the session.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if chatVerbose {
			observability.SetOutput(os.Stderr)
		} else {
			observability.SetOutput(io.Discard)
		}

		ctx := cmd.Context()
		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}

		return runChat(ctx, a.conv, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "write logs to stderr")
}

func runChat(ctx context.Context, conv *conversation.Service, in io.Reader, out io.Writer) error {
	started, err := conv.StartSession(ctx)
	if err != nil {
		return err
	}
	id := started.Session.ID
	defer func() { _ = conv.EndSession(ctx, id) }()

	for _, m := range started.Messages {
		printMessage(out, m)
	}

	s := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !s.Scan() {
			break
		}
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}

		fmt.Fprintln(out, "Assistant is thinking...")
		res, err := conv.SendMessage(ctx, conversation.SendMessageInput{SessionID: id, Text: line})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		printMessage(out, res.AssistantMessage)
	}
	fmt.Fprintln(out)

	return s.Err()
}

func printMessage(out io.Writer, m *domain.Message) {
	prefix := "assistant> "
	if m.ContentType == domain.ContentNotice {
		prefix = "notice> "
	}
	fmt.Fprintf(out, "%s%s\n\n", prefix, m.Text)
}
