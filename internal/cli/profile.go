package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/astrogid/astrogid/internal/filex"
	"github.com/astrogid/astrogid/internal/imaging"
)

func (a *App) editBio(ctx context.Context) {
	bio, err := GetMultiline(a.reader, "Tell the community about yourself", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	if err := a.sessions.UpdateProfile(ctx, &bio, nil); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Bio updated.")
}

func (a *App) setAvatar(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: avatar <path>")
		return
	}

	data, err := filex.ReadLimited(args[0], imaging.MaxUploadSize)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	payload, err := imaging.Process(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	uri := payload.DataURI()
	if err := a.sessions.UpdateProfile(ctx, nil, &uri); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Avatar updated (%dx%d).\n", payload.Width, payload.Height)
}
