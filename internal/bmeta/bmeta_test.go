package bmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New("v1.2.0", "", "abc123")
	assert.Equal(t, Meta{Version: "v1.2.0", Date: "N/A", Commit: "abc123"}, m)

	fields := m.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "build_date", fields[1].Key)
	assert.Equal(t, "N/A", fields[1].String)
}
