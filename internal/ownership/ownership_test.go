package ownership_test

import (
	"testing"

	"go-orgadmin/internal/ownership"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMayAccess(t *testing.T) {
	owner := uuid.New()

	t.Run("owner may access own record", func(t *testing.T) {
		caller := ownership.Caller{ID: owner}
		assert.True(t, ownership.MayAccess(caller, owner))
	})

	t.Run("stranger may not", func(t *testing.T) {
		caller := ownership.Caller{ID: uuid.New()}
		assert.False(t, ownership.MayAccess(caller, owner))
	})

	t.Run("superuser may access anything", func(t *testing.T) {
		caller := ownership.Caller{ID: uuid.New(), IsSuperuser: true}
		assert.True(t, ownership.MayAccess(caller, owner))
	})
}
