package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/avail/internal/export"
	"github.com/ayoisaiah/avail/internal/selection"
)

// runSelectionCmd executes the user's selection command with the JSON
// document of slots on its standard input. Its output goes to out.
func runSelectionCmd(
	ctx context.Context,
	selectionCmd string,
	slots []time.Time,
	scheme selection.Scheme,
	out io.Writer,
) error {
	if selectionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(selectionCmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	var stdin bytes.Buffer

	err = export.Write(&stdin, slots, export.Options{
		Format: export.FormatJSON,
		Scheme: scheme.String(),
	})
	if err != nil {
		return err
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = &stdin
	cmd.Stdout = out
	cmd.Stderr = out

	slog.Info("running selection command", slog.String("cmd", name))

	if err := cmd.Run(); err != nil {
		return errRunCmd.Wrap(err)
	}

	return nil
}

// notificationText summarises a saved selection.
func notificationText(slots []time.Time) string {
	if len(slots) == 0 {
		return "No time slots selected"
	}

	ranges := export.Ranges(slots)

	slotNoun := "slots"
	if len(slots) == 1 {
		slotNoun = "slot"
	}

	rangeNoun := "ranges"
	if len(ranges) == 1 {
		rangeNoun = "range"
	}

	return fmt.Sprintf(
		"Saved %d %s in %d %s",
		len(slots),
		slotNoun,
		len(ranges),
		rangeNoun,
	)
}

// notify sends a desktop notification for the saved selection.
func notify(slots []time.Time) {
	err := beeep.Notify("avail", notificationText(slots), "")
	if err != nil {
		slog.Warn("desktop notification failed", slog.Any("err", err))
	}
}
