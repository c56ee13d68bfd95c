// Package learn provides runners for the daily learning commands.
package learn

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/abritton2002/GrowthApp4Men/pkg/catalog"
	"github.com/abritton2002/GrowthApp4Men/pkg/dates"
	"github.com/abritton2002/GrowthApp4Men/pkg/glyph"
	"github.com/abritton2002/GrowthApp4Men/pkg/learn"
	"github.com/abritton2002/GrowthApp4Men/pkg/pick"
	"github.com/abritton2002/GrowthApp4Men/pkg/printers"
	"github.com/abritton2002/GrowthApp4Men/pkg/store"
)

// Today shows the selected item if one was picked, otherwise the
// deterministic date-seeded suggestion from the catalog.
type Today struct {
	Persistence store.Persistence
}

func (n *Today) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show today, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())
	s.Initialize()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Today's Learning")

	if item, ok := s.SelectedItem(); ok {
		pp.LearningItem(item, s.IsItemCompleted(item.ID))
		return nil
	}

	item, ok := pick.ForDate(s.Items(), dates.Today())
	if !ok {
		fmt.Println("the learning catalog is empty")
		return nil
	}
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("suggested for today (pick it or choose another):")
	pp.NewLine()
	pp.LearningItem(item, s.IsItemCompleted(item.ID))

	return nil
}

// Pick fills today's single selection slot with the given item.
type Pick struct {
	ID          string
	Persistence store.Persistence
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not pick, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())
	s.Initialize()
	s.SelectItem(n.ID)

	item, ok := s.SelectedItem()
	if !ok {
		fmt.Printf("no learning item with id %s\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Today's Learning")
	pp.LearningItem(item, s.IsItemCompleted(item.ID))

	return nil
}

// Done marks an item completed. The record is cumulative across days.
type Done struct {
	ID          string
	Persistence store.Persistence
}

func (n *Done) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())
	s.Initialize()
	s.CompleteItem(n.ID)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Learning Progress")
	pp.CategoryTable(s.Stats())

	return nil
}

// Reset empties today's selection slot, keeping the completion record.
type Reset struct {
	Persistence store.Persistence
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reset, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())
	s.ResetDailySelection()
	fmt.Println("today's selection cleared")

	return nil
}

// List prints the whole catalog with completion marks.
type List struct {
	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())

	pp := printers.PrettyPrint{}
	fmt.Println("")

	t := color.New()
	done := color.New(color.Faint)
	for _, category := range catalog.Categories() {
		pp.Title(category)
		for _, item := range s.Items() {
			if item.Category != category {
				continue
			}
			if s.IsItemCompleted(item.ID) {
				_, _ = done.Printf("%s %s  %s\n", glyph.Done.String(), item.ID, glyph.Strike(item.Title))
			} else {
				_, _ = t.Printf("%s %s  %s\n", glyph.Open.String(), item.ID, item.Title)
			}
		}
		pp.NewLine()
	}

	return nil
}

// Stats prints cumulative completion per category.
type Stats struct {
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show stats, no persistence")
	}

	s := learn.NewStore(n.Persistence, catalog.LearningItems())

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Learning Progress", s.TotalCompleted())
	pp.CategoryTable(s.Stats())

	return nil
}
