package item

import (
	"errors"

	itemerrors "go-orgadmin/internal/item/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return itemerrors.ErrItemNotFound
	}

	return err
}
