// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gplt

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomainValue   = errors.New("invalid domain value")
	ErrMissingRequiredValue = errors.New("missing required value")
)

func invalidValue(param string, value any) error {
	return fmt.Errorf("%s: %w %v", param, ErrInvalidDomainValue, value)
}

func missingValue(param string) error {
	return fmt.Errorf("%s: %w", param, ErrMissingRequiredValue)
}
