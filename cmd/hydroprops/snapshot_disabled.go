//go:build nosnapshot

package main

import (
	"errors"

	"github.com/san-kum/hydroprops/internal/hydro"
	"github.com/san-kum/hydroprops/internal/units"
)

func writeSnapshot(*hydro.Properties, *units.System) (string, error) {
	return "", errors.New("built without snapshot metadata support")
}
