package ledger

import (
	"testing"

	"loyalty/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSuspiciousDelta(t *testing.T) {
	tx := &entity.Transaction{Amount: 120}

	delta, changed := SuspiciousDelta(tx, false)
	assert.False(t, changed)
	assert.Zero(t, delta)

	delta, changed = SuspiciousDelta(tx, true)
	assert.True(t, changed)
	assert.Equal(t, int64(-120), delta)

	tx.Suspicious = true
	delta, changed = SuspiciousDelta(tx, true)
	assert.False(t, changed)
	assert.Zero(t, delta)

	delta, changed = SuspiciousDelta(tx, false)
	assert.True(t, changed)
	assert.Equal(t, int64(120), delta)
}

func TestSuspiciousDelta_EvenTogglesRestoreBalance(t *testing.T) {
	tx := &entity.Transaction{Amount: -35}
	balance := int64(500)

	for i := 0; i < 6; i++ {
		delta, changed := SuspiciousDelta(tx, !tx.Suspicious)
		assert.True(t, changed)
		balance += delta
		tx.Suspicious = !tx.Suspicious
	}

	assert.Equal(t, int64(500), balance)
	assert.False(t, tx.Suspicious)
}
