package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errMFAIncomplete = errors.New("second factor was not accepted")

// Login prompts for the identity number and password and signs in. When the
// portal asks for a second factor the user is prompted for the code and the
// login is submitted again with the challenge.
func (a *App) Login(ctx context.Context) error {
	if !a.guard(navigation.Login) {
		return nil
	}

	identityNo, err := getSimpleText(a.reader, "Enter identity number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	in := services.LoginInput{IdentityNo: identityNo, Password: string(password)}
	res, err := a.auth.Login(ctx, in)
	if err != nil {
		return err
	}

	if res.RequiresMFA {
		prompt := "Enter verification code"
		if c := res.Challenge; c != nil {
			switch {
			case c.Message != "":
				prompt = c.Message
			case c.Destination != "":
				prompt = fmt.Sprintf("Enter the code sent to %s", c.Destination)
			}
			in.ChallengeID = c.ChallengeID
		}

		code, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		in.MFACode = code

		res, err = a.auth.Login(ctx, in)
		if err != nil {
			return err
		}
		if res.RequiresMFA {
			return errMFAIncomplete
		}
	}

	a.logger.Info(ctx, "login successful", "device", a.store.DeviceID())
	fmt.Fprintf(a.out, "Signed in as %s\n", a.store.PrimaryRole())
	return nil
}

// Logout ends the local session and drops every dashboard.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.guard(navigation.Dashboard) {
		return nil
	}

	p, err := a.auth.EnsureProfile(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintf(tw, "Identity\t%s\n", p.IdentityNo)
	fmt.Fprintf(tw, "Name\t%s\n", orDash(strings.TrimSpace(p.FirstName+" "+p.LastName)))
	fmt.Fprintf(tw, "Email\t%s\n", orDash(p.Email))
	fmt.Fprintf(tw, "Roles\t%s\n", strings.Join(a.store.Roles(), ", "))
	fmt.Fprintf(tw, "MFA\t%s\n", onOff(p.MFAEnabled))
	fmt.Fprintf(tw, "Device\t%s (%s)\n", a.store.DeviceID(), a.auth.DeviceName())
	return tw.Flush()
}

// MFA switches the second factor on or off for the account.
func (a *App) MFA(ctx context.Context, mode string) error {
	if !a.guard(navigation.Dashboard) {
		return nil
	}

	var enabled bool
	switch strings.ToLower(mode) {
	case "on":
		enabled = true
	case "off":
	default:
		return fmt.Errorf("expected on or off, got %q", mode)
	}

	p, err := a.auth.UpdateMFAPreference(ctx, enabled)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "MFA %s\n", onOff(p.MFAEnabled))
	return nil
}

func (a *App) Sessions(ctx context.Context) error {
	if !a.guard(navigation.Dashboard) {
		return nil
	}

	sessions, err := a.auth.FetchSessions(ctx)
	if err != nil {
		return err
	}

	current := a.store.DeviceID()
	tw := newTable(a.out)
	fmt.Fprintln(tw, "DEVICE\tNAME\tLAST SEEN\t")
	for _, s := range sessions {
		marker := ""
		if s.Current || s.DeviceID == current {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.DeviceID, orDash(s.DeviceName), orDash(s.LastSeenAt), marker)
	}
	return tw.Flush()
}

// Revoke signs a device out. Revoking this device also ends the local
// session.
func (a *App) Revoke(ctx context.Context, deviceID string) error {
	if !a.guard(navigation.Dashboard) {
		return nil
	}

	if err := a.auth.RevokeSession(ctx, deviceID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Session %s revoked\n", deviceID)

	if deviceID == a.store.DeviceID() {
		return a.Logout(ctx)
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
