// Package console plays a game against the computer on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	msgWelcome      = "Welcome to the Tic Tac Toe Game!"
	msgPromptRow    = "Enter row (0, 1, 2): "
	msgPromptCol    = "Enter column (0, 1, 2): "
	msgInvalidInput = "Invalid input. Please try again."
	msgCellTaken    = "Cell is already taken!"
	msgComputerWins = "AI wins!"
	msgHumanWins    = "Human wins!"
	msgDraw         = "It's a draw!"

	colorComputer = "1"
	colorHuman    = "4"
)

var ErrInputClosed = errors.New("input closed")

type bot interface {
	MakeTurn(game *entity.Game) error
}

type Console struct {
	logger *slog.Logger
	bot    bot

	in     *bufio.Scanner
	out    io.Writer
	styles *termenv.Output
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, bot bot) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		bot:    bot,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: termenv.NewOutput(out),
	}
}

// Run plays one game, computer first, and returns its outcome.
func (that *Console) Run(ctx context.Context) (tictactoe.Outcome, error) {
	game := entity.NewGame("console")

	that.println(msgWelcome)

	for {
		that.render(&game.Board)

		if err := that.bot.MakeTurn(game); err != nil {
			return game.Outcome, fmt.Errorf("bot failed to make turn: %w", err)
		}
		that.logger.Debug("computer moved", "move", game.LastMove.String(), "board", game.Board.String())

		if game.IsFinished() {
			return that.finish(game), nil
		}

		that.render(&game.Board)

		move, err := that.readMove(ctx, &game.Board)
		if err != nil {
			return game.Outcome, err
		}

		if err = game.MakeTurn(tictactoe.Human, move); err != nil {
			return game.Outcome, fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsFinished() {
			return that.finish(game), nil
		}
	}
}

func (that *Console) finish(game *entity.Game) tictactoe.Outcome {
	that.render(&game.Board)

	switch game.Outcome {
	case tictactoe.ComputerWins:
		that.println(msgComputerWins)
	case tictactoe.HumanWins:
		that.println(msgHumanWins)
	case tictactoe.Draw:
		that.println(msgDraw)
	}

	return game.Outcome
}

// readMove prompts until the human names an empty cell.
func (that *Console) readMove(ctx context.Context, board *tictactoe.Board) (tictactoe.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return tictactoe.Move{}, err
		}

		row, ok, err := that.readInt(msgPromptRow)
		if err != nil {
			return tictactoe.Move{}, err
		}
		if !ok {
			that.println(msgInvalidInput)
			continue
		}

		col, ok, err := that.readInt(msgPromptCol)
		if err != nil {
			return tictactoe.Move{}, err
		}
		if !ok {
			that.println(msgInvalidInput)
			continue
		}

		move := tictactoe.Move{Row: row, Col: col}
		switch {
		case !move.InBounds():
			that.println(msgInvalidInput)
		case board.At(move) != tictactoe.Empty:
			that.println(msgCellTaken)
		default:
			return move, nil
		}
	}
}

func (that *Console) readInt(prompt string) (int, bool, error) {
	fmt.Fprint(that.out, prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, false, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, false, ErrInputClosed
	}

	value, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
	if err != nil {
		return 0, false, nil
	}

	return value, true, nil
}

func (that *Console) render(board *tictactoe.Board) {
	for _, row := range board {
		cells := lo.Map(row[:], func(cell tictactoe.Cell, _ int) string {
			return that.styleCell(cell)
		})
		that.println(strings.Join(cells, "  | "))
		that.println(strings.Repeat("-", 13))
	}
	that.println(strings.Repeat("=", 15))
}

func (that *Console) styleCell(cell tictactoe.Cell) string {
	switch cell {
	case tictactoe.Computer:
		return that.styles.String(cell.String()).Foreground(that.styles.Color(colorComputer)).Bold().String()
	case tictactoe.Human:
		return that.styles.String(cell.String()).Foreground(that.styles.Color(colorHuman)).String()
	default:
		return " "
	}
}

func (that *Console) println(line string) {
	fmt.Fprintln(that.out, line)
}
