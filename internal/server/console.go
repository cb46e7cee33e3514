package server

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ColonyCommand/internal/game"
)

// Console is the line-oriented player frontend: it prompts, reads commands,
// and renders turn reports.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine prompts and returns the next trimmed input line. io.EOF means the
// input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askInt re-prompts until the answer parses and passes check.
func (c *Console) askInt(prompt string, check func(int) error) (int, error) {
	for {
		raw, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Printf("numerical value required\n")
			continue
		}
		if err := check(n); err != nil {
			c.Printf("%v\n", err)
			continue
		}
		return n, nil
	}
}

// SetupChoices is what interactive setup collects before a game starts.
type SetupChoices struct {
	Humans  int
	AIs     int
	MapSize string
}

// PromptSetup walks the pre-game questions: commander count, AI count, map
// size. Invalid answers re-prompt.
func (c *Console) PromptSetup(mapSizes map[string]int) (SetupChoices, error) {
	var choices SetupChoices
	var err error

	choices.Humans, err = c.askInt("number of commanders (1-4): ", func(n int) error {
		if n < 1 || n > 4 {
			return fmt.Errorf("colonial doctrine allows 1-4 commanders")
		}
		return nil
	})
	if err != nil {
		return choices, err
	}

	choices.AIs, err = c.askInt("number of AI factions (0-4): ", func(n int) error {
		if n < 0 || n > 4 {
			return fmt.Errorf("colonial doctrine allows 0-4 AI factions")
		}
		if choices.Humans+n < 2 {
			return fmt.Errorf("a war needs at least 2 factions")
		}
		return nil
	})
	if err != nil {
		return choices, err
	}

	sizes := make([]string, 0, len(mapSizes))
	for name := range mapSizes {
		sizes = append(sizes, name)
	}
	for {
		choices.MapSize, err = c.ReadLine(fmt.Sprintf("map size (%s): ", strings.Join(sizes, "/")))
		if err != nil {
			return choices, err
		}
		choices.MapSize = strings.ToLower(choices.MapSize)
		if _, ok := mapSizes[choices.MapSize]; ok {
			return choices, nil
		}
		c.Printf("unknown map size %q\n", choices.MapSize)
	}
}

// RenderReport prints one pre-turn report in reading order.
func (c *Console) RenderReport(s *game.GameState, r *game.TurnReport) {
	c.Printf("\n--- cycle %d, %s ---\n", r.Cycle, s.PlayerName(r.Player))
	for _, job := range r.Completed {
		c.Printf("completed: %s\n", job.Description)
	}
	if !r.Production.IsZero() {
		c.Printf("production: +%s\n", r.Production)
	}
	for _, planet := range r.ShieldRecharged {
		c.Printf("shield recharged over %s\n", planet)
	}
	for _, arr := range r.Arrivals {
		c.Printf("fleet %s arrived at %s\n", arr.Fleet, arr.Planet)
	}
	for _, battle := range r.Battles {
		c.Printf("battle over %s: %s prevails, %d fleet(s) destroyed\n",
			battle.Planet, s.PlayerName(battle.Winner), len(battle.Destroyed))
	}
	for _, bmb := range r.Bombardments {
		if bmb.ShieldBroken {
			c.Printf("bombardment of %s: %d damage, shield DOWN\n", bmb.Planet, bmb.Damage)
		} else {
			c.Printf("bombardment of %s: %d damage, shield at %d\n", bmb.Planet, bmb.Damage, bmb.ShieldAfter)
		}
	}
	for _, conq := range r.Conquests {
		c.Printf("%s has fallen to %s\n", conq.Planet, s.PlayerName(conq.NewOwner))
	}
}
