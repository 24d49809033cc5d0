package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) register(ctx context.Context) error {
	user, err := a.resolveUser()
	if err != nil {
		return err
	}
	x, err := a.secret(user)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.prover.Register(ctx, user, x); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s\n", user)
	return nil
}

func (a *App) login(ctx context.Context) error {
	user, err := a.resolveUser()
	if err != nil {
		return err
	}
	x, err := a.secret(user)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	session, err := a.prover.Login(ctx, user, x)
	if err != nil {
		return err
	}
	a.session = session

	fmt.Fprintf(a.out, "logged in as %s, session %s\n", user, session.ID)
	fmt.Fprintf(a.out, "%s=%s\n", SessionTokenEnv, session.AccessToken)
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	if a.session == nil {
		return ErrNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.WhoAmI(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "user %s, session %s, expires %s\n", id.User, id.SessionID, id.ExpiresAt.Format(time.RFC3339))
	return nil
}
