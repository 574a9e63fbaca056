// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrNotAuthenticated = errors.New("no token: pass -token, set ADAPTER_TOKEN or provide login credentials")
	ErrNothingToUpdate  = errors.New("nothing to update: pass at least one of -name, -description, -active")
)
