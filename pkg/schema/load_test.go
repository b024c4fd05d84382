package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLBuildsSchema(t *testing.T) {
	doc := []byte(`
tables:
  - name: users
    columns:
      - name: id
        type: INTEGER
        primary_key: true
      - name: email
        type: VARCHAR
  - name: orders
    columns:
      - name: id
        type: INTEGER
      - name: user_id
        type: INTEGER
      - name: total
        type: DECIMAL
`)
	s, err := LoadYAML(doc)
	require.NoError(t, err)

	users, ok := s.Table("users")
	require.True(t, ok)
	assert.True(t, users.HasColumn("EMAIL"))
	col, ok := users.Column("id")
	require.True(t, ok)
	assert.True(t, col.PrimaryKey)
	assert.Equal(t, Integer, col.DataType)

	_, ok = s.Table("orders")
	assert.True(t, ok)
}

func TestLoadYAMLRejectsUnknownType(t *testing.T) {
	doc := []byte(`
tables:
  - name: users
    columns:
      - name: id
        type: NOT_A_TYPE
`)
	_, err := LoadYAML(doc)
	assert.Error(t, err)
}
