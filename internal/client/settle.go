// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"bridalstudio/internal/models"
)

// Settle collapses a call result into an envelope. Any error becomes
// {success:false, data:fallback}; there is no retry. Page loads use it so
// a single failed fetch never fails the page.
func Settle[T any](value T, err error, fallback T) models.Envelope[T] {
	if err != nil {
		return models.Fail(fallback, err.Error())
	}
	return models.OK(value)
}
