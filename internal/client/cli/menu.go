package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// menuIface defines the minimal command surface the menu needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type menuIface interface {
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ResetPassword(ctx context.Context) error
}

const menuText = `
What would you like to do?
1. Log in and start hunting
2. Join the hunt (Register)
3. Forgot your password?
4. Call it a day (Exit)
`

const farewell = "Thanks for using Game Deal Hunter. Happy gaming!"

// runMenu shows the main menu and dispatches the chosen entry until the user
// picks 4 or input ends.
//
// Handlers report user-level outcomes themselves and return nil; a non-nil
// error ends the menu. EOF, whether at the prompt or inside a handler, ends
// it like choice 4 and yields nil. Any other handler error, such as
// exhausted login attempts, is returned to the caller.
func runMenu(ctx context.Context, a menuIface, reader *bufio.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(w, menuText)
		choice, err := GetSimpleText(reader, "Enter your choice (1-4):", w)
		if err != nil {
			return endOfInput(w, err)
		}

		var cmdErr error
		switch choice {
		case "1":
			cmdErr = a.Login(ctx)
		case "2":
			cmdErr = a.Register(ctx)
		case "3":
			cmdErr = a.ResetPassword(ctx)
		case "4":
			fmt.Fprintln(w, farewell)
			return nil
		default:
			fmt.Fprintln(w, "Oops! That's not a valid choice. Let's try again.")
		}

		if cmdErr != nil {
			return endOfInput(w, cmdErr)
		}
	}
}

func endOfInput(w io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, farewell)
		return nil
	}
	return err
}
