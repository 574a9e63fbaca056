// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-service-template/models"
)

func runVersion(ctx context.Context, a *App, _ []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("error getting server version: %w", err)
	}
	a.print(renderMessage("Server version", version))
	return nil
}

func runRegister(ctx context.Context, a *App, args []string) error {
	if err := a.parseCredentials("register", args); err != nil {
		return err
	}
	if err := a.adapter.Register(ctx, a.loginUser()); err != nil {
		return fmt.Errorf("error registering: %w", err)
	}
	a.print(renderMessage("Registered", a.adapter.Token()))
	return nil
}

func runLogin(ctx context.Context, a *App, args []string) error {
	if err := a.parseCredentials("login", args); err != nil {
		return err
	}
	if err := a.adapter.Login(ctx, a.loginUser()); err != nil {
		return fmt.Errorf("error logging in: %w", err)
	}
	a.print(renderMessage("Logged in", a.adapter.Token()))
	return nil
}

func runList(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("list")
	page := fs.Int("page", 1, "page number, starting at 1")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	list, err := a.adapter.ListExamples(ctx, *page)
	if err != nil {
		return fmt.Errorf("error listing items: %w", err)
	}
	a.print(renderExampleList(*page, list))
	return nil
}

func runGet(ctx context.Context, a *App, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	example, err := a.adapter.GetExample(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting item %d: %w", id, err)
	}
	a.print(renderExample(example))
	return nil
}

func runCreate(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("create")
	name := fs.String("name", "", "item name")
	description := fs.String("description", "", "item description")
	active := fs.Bool("active", true, "whether the item is active")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	req := models.ExampleCreateRequest{IsActive: active}
	// an omitted -name is sent as absent so the server reports it missing
	if visited(fs, "name") {
		req.Name = name
	}
	if visited(fs, "description") {
		req.Description = description
	}

	example, err := a.adapter.CreateExample(ctx, req)
	if err != nil {
		return fmt.Errorf("error creating item: %w", err)
	}
	a.print(renderExample(example))
	return nil
}

func runUpdate(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("update")
	name := fs.String("name", "", "new item name")
	description := fs.String("description", "", "new item description")
	active := fs.Bool("active", true, "whether the item is active")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	id, err := parseID(positional)
	if err != nil {
		return err
	}

	var req models.ExampleUpdateRequest
	if visited(fs, "name") {
		req.Name = name
	}
	if visited(fs, "description") {
		req.Description = description
	}
	if visited(fs, "active") {
		req.IsActive = active
	}
	if req.Name == nil && req.Description == nil && req.IsActive == nil {
		return ErrNothingToUpdate
	}

	example, err := a.adapter.UpdateExample(ctx, id, req)
	if err != nil {
		return fmt.Errorf("error updating item %d: %w", id, err)
	}
	a.print(renderExample(example))
	return nil
}

func runDelete(ctx context.Context, a *App, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteExample(ctx, id); err != nil {
		return fmt.Errorf("error deleting item %d: %w", id, err)
	}
	a.print(renderMessage("Deleted", fmt.Sprintf("%s %d was deleted", models.Example{}.VerboseName(), id)))
	return nil
}

func (a *App) parseCredentials(name string, args []string) error {
	fs := a.newFlagSet(name)
	fs.StringVar(&a.creds.Login, "login", a.creds.Login, "login")
	fs.StringVar(&a.creds.Password, "password", a.creds.Password, "password")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if a.creds.Login == "" || a.creds.Password == "" {
		return fmt.Errorf("%w: -login and -password are required", ErrInvalidArguments)
	}
	return nil
}

func (a *App) loginUser() models.User {
	return models.User{Login: a.creds.Login, Password: a.creds.Password}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one item id", ErrInvalidArguments)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: item id must be a positive integer, got %q", ErrInvalidArguments, args[0])
	}
	return id, nil
}
