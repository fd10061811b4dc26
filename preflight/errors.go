// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package preflight

import (
	"errors"
)

var (
	ErrTargetNotFound = errors.New("target directory does not exist")
	ErrEmptyChecklist = errors.New("checklist has no entries")
)
