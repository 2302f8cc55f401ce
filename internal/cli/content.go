package cli

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/astrogid/astrogid/internal/filex"
	"github.com/astrogid/astrogid/internal/imaging"
	"github.com/astrogid/astrogid/internal/model"
)

func categoryNames() string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func (a *App) publish(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to publish.")
		return
	}

	raw, err := getSimpleText(a.reader, "Category ("+categoryNames()+")", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	category, err := model.ParseCategory(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	imagePath, err := getSimpleText(a.reader, "Image path (leave empty to skip)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	var image string
	if imagePath != "" {
		data, err := filex.ReadLimited(imagePath, imaging.MaxUploadSize)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		payload, err := imaging.Process(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		image = payload.DataURI()
	}

	cur := a.sessions.Current()
	item, err := a.catalog.Publish(ctx, cur.AccountID, category, title, description, image)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Published %q (id %d).\n", item.Title, item.ID)
}

func (a *App) printItems(items []model.ContentItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing here yet.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "[%d] %-10s %s by %s (%s)\n",
			item.ID, item.Category, item.Title, item.OwnerName,
			item.CreatedAt.Format("2006-01-02"))
	}
}

func (a *App) mine() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to see your posts.")
		return
	}
	a.printItems(a.catalog.PostsByOwner(a.sessions.Current().AccountID))
}

func (a *App) deleteItem(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to delete posts.")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Error: id must be a number")
		return
	}

	// users delete their own posts only
	owned := false
	for _, item := range a.catalog.PostsByOwner(a.sessions.Current().AccountID) {
		if item.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		fmt.Fprintln(a.out, "You can only delete your own posts.")
		return
	}

	if err := a.catalog.DeleteItem(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Deleted.")
}
