// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-memories/models"
)

// readImage loads the image at path. An empty path yields nil, which the
// form services read as "keep the current image".
func readImage(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read image %q", path), err)
	}
	return data, nil
}

func parseLocalIDArg(name, value string) (models.LocalID, error) {
	id, err := models.ParseLocalID(value)
	if err != nil {
		return models.LocalID{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid %s", name), err)
	}
	return id, nil
}

func parseServerIDArg(name, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid %s %q: must be a positive number", name, value))
	}
	return id, nil
}
