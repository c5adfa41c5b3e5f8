package main

import (
	"context"
	"fmt"
	"io"

	"github.com/njyeung/tubechat/backend"
	"github.com/njyeung/tubechat/session"
	"go.uber.org/zap"
)

// runHeadless submits rawURL, asks each question in order and optionally
// prints the comments. Notifications go to errOut, answers and comments to
// out. Returns the process exit code.
func runHeadless(ctx context.Context, b backend.Backend, logger *zap.Logger, out, errOut io.Writer, rawURL string, questions []string, withComments bool) int {
	failed := false
	notifier := session.NotifierFunc(func(n session.Notification) {
		if n.Level == session.LevelError {
			failed = true
		}
		fmt.Fprintf(errOut, "[%s] %s\n", n.Level, n.Text)
	})

	o := session.New(b, notifier, logger)
	defer o.Close()

	o.SubmitVideo(ctx, rawURL)
	if !o.Session().Submitted {
		return 1
	}

	for _, q := range questions {
		before := o.History().Len()
		o.AskQuestion(ctx, q)
		if o.History().Len() > before {
			fmt.Fprintf(out, "Q: %s\nA: %s\n\n", q, o.Answer())
		}
	}

	if withComments {
		o.LoadComments(ctx)
		for _, c := range o.Comments().Comments() {
			fmt.Fprintf(out, "@%s: %s\n", c.Author, c.Text)
		}
	}

	if failed {
		return 1
	}
	return 0
}
