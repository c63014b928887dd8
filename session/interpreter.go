package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradecal/datekey"
)

const helpText = `commands:
  select <YYYY-MM-DD>   edit another day (unsaved changes are dropped)
  today | next | prev   move the selection
  pnl <amount>          set the P&L field
  note <text>           set the note field
  save                  save the form for the selected day
  show                  print the form
  help                  this text`

// Interpreter drives a Session from text commands, one per line.
type Interpreter struct {
	s   *Session
	loc *time.Location
}

// NewInterpreter reads dates in loc, or time.Local when loc is nil.
func NewInterpreter(s *Session, loc *time.Location) *Interpreter {
	if loc == nil {
		loc = time.Local
	}
	return &Interpreter{s: s, loc: loc}
}

// Exec runs one command line and returns what to print. A save whose
// write failed returns both the output and the *journal.PersistError.
func (in *Interpreter) Exec(line string) (string, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch strings.ToLower(cmd) {
	case "":
		return "", nil
	case "help", "?":
		return helpText, nil
	case "select":
		t, err := datekey.Parse(strings.TrimSpace(arg), in.loc)
		if err != nil {
			return "", err
		}
		in.s.SelectDate(t)
		return in.show(), nil
	case "today":
		in.s.SelectDate(time.Now().In(in.loc))
		return in.show(), nil
	case "next":
		in.s.SelectDate(in.s.Selected().AddDate(0, 0, 1))
		return in.show(), nil
	case "prev":
		in.s.SelectDate(in.s.Selected().AddDate(0, 0, -1))
		return in.show(), nil
	case "pnl":
		in.s.UpdatePnlInput(strings.TrimSpace(arg))
		return "", nil
	case "note":
		in.s.UpdateNoteInput(arg)
		return "", nil
	case "save":
		key, rec, err := in.s.Commit()
		out := fmt.Sprintf("saved %s pnl=%v", key, rec.PnL)
		return out, err
	case "show":
		return in.show(), nil
	default:
		return "", fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (in *Interpreter) show() string {
	var b strings.Builder
	sel := in.s.Selected()
	fmt.Fprintf(&b, "%s %s", in.s.Key(), sel.Weekday().String()[:3])
	if in.s.Dirty() {
		b.WriteString(" (unsaved)")
	}
	fmt.Fprintf(&b, "\npnl:  %s\nnote: %s", in.s.PnlInput(), in.s.NoteInput())
	return b.String()
}
