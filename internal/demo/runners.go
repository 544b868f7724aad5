package demo

import (
	"fmt"
	"io"
	"strings"

	"exempla/internal/board"
	"exempla/internal/garden"
	"exempla/internal/iterate"
	"exempla/internal/mood"
	"exempla/internal/names"
	"exempla/internal/respond"

	"go.uber.org/zap"
)

func runMajor(w io.Writer, logger *zap.Logger) error {
	asked := append(respond.Majors(), "Underwater Basket Weaving")
	for _, major := range asked {
		answer := respond.Respond(major)
		logger.Debug("responded", zap.String("major", major))
		fmt.Fprintf(w, "%s -> %s\n", major, answer)
	}
	return nil
}

func runEnumerate(w io.Writer, logger *zap.Logger) error {
	seq := iterate.Range(1, 5)
	logger.Debug("enumerating", zap.Int("len", len(seq)))
	iterate.ForEach(seq, func(n int) {
		fmt.Fprintln(w, n)
	})
	return nil
}

func runMood(w io.Writer, _ *zap.Logger) error {
	for _, line := range mood.Report("Suzie", []string{"happy", "excited", "nervous"}) {
		fmt.Fprintln(w, line)
	}
	return nil
}

func runSplitName(w io.Writer, logger *zap.Logger) error {
	full := "Pablo Diego José Francisco de Paula Juan Nepomuceno María " +
		"de los Remedios Cipriano de la Santísima Trinidad Picasso"
	parts, err := names.Split(full)
	if err != nil {
		return err
	}
	logger.Debug("split name", zap.Int("middle_tokens", len(parts.Middle)))

	fmt.Fprintf(w, "full:   %s\n", full)
	fmt.Fprintf(w, "first:  %s\n", parts.First)
	fmt.Fprintf(w, "middle: %s (%d tokens)\n", strings.Join(parts.Middle, " "), len(parts.Middle))
	fmt.Fprintf(w, "last:   %s\n", parts.Last)
	return nil
}

func runBoard(w io.Writer, logger *zap.Logger) error {
	b, err := board.New(8, 8)
	if err != nil {
		return err
	}

	// Back rank rooks plus a pawn off its home square.
	placements := []struct {
		row, col int
		piece    board.Piece
	}{
		{0, 0, 2}, {0, 7, 2}, {3, 4, 1},
	}
	for _, p := range placements {
		if err := b.Set(p.row, p.col, p.piece); err != nil {
			return err
		}
	}
	logger.Debug("board populated", zap.Int("pieces", len(placements)))

	fmt.Fprintln(w, gridStyle.Render(strings.TrimSuffix(b.String(), "\n")))

	piece, ok, err := b.Get(3, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cell (3,4): piece=%d occupied=%v\n", piece, ok)

	_, ok, err = b.Get(5, 5)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cell (5,5): occupied=%v\n", ok)
	return nil
}

func runMiddleName(w io.Writer, _ *zap.Logger) error {
	people := []names.PersonName{
		names.NewPersonName("George", "Washington"),
		names.NewPersonName("Barack", "Obama", names.WithMiddle("Hussein")),
	}
	for _, p := range people {
		fmt.Fprintf(w, "%s: has middle name = %v\n", p.Full(), p.HasMiddleName())
	}
	return nil
}

func runGarden(w io.Writer, logger *zap.Logger) error {
	entries, err := garden.Seed()
	if err != nil {
		return err
	}
	inv, err := garden.New(entries)
	if err != nil {
		return err
	}
	logger.Debug("inventory built", zap.Int("plants", inv.Len()))

	for _, e := range inv.Entries() {
		fmt.Fprintf(w, "%-10s %d\n", e.Name, e.Count)
	}

	for _, name := range []string{"roses", "tulips"} {
		if count, ok := inv.CountOf(name); ok {
			fmt.Fprintf(w, "lookup %s: %d\n", name, count)
		} else {
			fmt.Fprintf(w, "lookup %s: not planted\n", name)
		}
	}
	return nil
}
