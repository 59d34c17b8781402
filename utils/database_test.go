package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type columnListFixture struct {
	Id      int64  `db:"id"`
	Name    string `db:"name"`
	Ignored string
	Skipped string `db:"-"`
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, ColumnList[columnListFixture]())
	assert.Equal(t, []string{"p.id", "p.name"}, ColumnList[columnListFixture]("p"))
}
