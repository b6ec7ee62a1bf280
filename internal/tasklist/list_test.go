package tasklist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/model"
	"task-tracker/internal/tasklist"
)

func sample(t *testing.T) *tasklist.List {
	t.Helper()
	ev, err := model.NewEvent("book fair",
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return tasklist.New([]model.Task{
		model.NewTodo("read book"),
		model.NewDeadline("return book", time.Date(2023, 12, 2, 18, 0, 0, 0, time.UTC)),
		ev,
		model.NewTodo("buy milk"),
	})
}

func descriptions(entries []tasklist.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Task.Description()
	}
	return out
}

func TestAddAndGet(t *testing.T) {
	var l tasklist.List
	l.Add(model.NewTodo("read book"))

	require.Equal(t, 1, l.Len())
	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, model.KindTodo, got.Kind())
	assert.Equal(t, "read book", got.Description())
	assert.False(t, got.Done())
}

func TestOutOfRange(t *testing.T) {
	l := sample(t)
	before := l.All()

	for _, pos := range []int{-1, 0, 5, 100} {
		_, err := l.Get(pos)
		assert.ErrorIs(t, err, tasklist.ErrOutOfRange, "Get(%d)", pos)
		_, err = l.MarkDone(pos)
		assert.ErrorIs(t, err, tasklist.ErrOutOfRange, "MarkDone(%d)", pos)
		_, err = l.MarkUndone(pos)
		assert.ErrorIs(t, err, tasklist.ErrOutOfRange, "MarkUndone(%d)", pos)
		_, err = l.Delete(pos)
		assert.ErrorIs(t, err, tasklist.ErrOutOfRange, "Delete(%d)", pos)
	}

	after := l.All()
	require.Len(t, after, len(before))
	for i := range before {
		assert.True(t, before[i].Equal(after[i]))
	}

	var empty tasklist.List
	_, err := empty.MarkDone(1)
	assert.ErrorIs(t, err, tasklist.ErrOutOfRange)
}

func TestDeleteRenumbers(t *testing.T) {
	l := sample(t)

	removed, err := l.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "return book", removed.Description())
	assert.Equal(t, 3, l.Len())

	got, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "book fair", got.Description())

	entries := l.ListFiltered("")
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	l := sample(t)

	for range 2 {
		got, err := l.MarkDone(1)
		require.NoError(t, err)
		assert.True(t, got.Done())
	}
	got, err := l.MarkUndone(1)
	require.NoError(t, err)
	assert.False(t, got.Done())
	got, err = l.MarkUndone(1)
	require.NoError(t, err)
	assert.False(t, got.Done())
}

func TestFind(t *testing.T) {
	l := sample(t)

	t.Run("empty keyword matches all in order", func(t *testing.T) {
		got := tasklist.Collect(l.Find(""))
		assert.Equal(t, []string{"read book", "return book", "book fair", "buy milk"}, descriptions(got))
	})

	t.Run("substring keeps positions", func(t *testing.T) {
		got := tasklist.Collect(l.Find("book"))
		require.Len(t, got, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{got[0].Position, got[1].Position, got[2].Position})
	})

	t.Run("unique substring", func(t *testing.T) {
		got := tasklist.Collect(l.Find("milk"))
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].Position)
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Empty(t, tasklist.Collect(l.Find("Book")))
	})

	t.Run("recomputed per call", func(t *testing.T) {
		seq := l.Find("milk")
		assert.Len(t, tasklist.Collect(seq), 1)
		l.Add(model.NewTodo("oat milk"))
		assert.Len(t, tasklist.Collect(seq), 2)
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range l.Find("") {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestListFiltered(t *testing.T) {
	l := sample(t)

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: "", want: []string{"read book", "return book", "book fair", "buy milk"}},
		{filter: "T", want: []string{"read book", "buy milk"}},
		{filter: "D", want: []string{"return book"}},
		{filter: "E", want: []string{"book fair"}},
		{filter: "X", want: []string{}},
		{filter: "t", want: []string{}},
	}
	for _, tt := range tests {
		t.Run("filter "+tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, descriptions(l.ListFiltered(tt.filter)))
		})
	}

	entries := l.ListFiltered("T")
	assert.Equal(t, 4, entries[1].Position)
}

func TestNewCopiesInput(t *testing.T) {
	src := []model.Task{model.NewTodo("a")}
	l := tasklist.New(src)
	_, err := l.MarkDone(1)
	require.NoError(t, err)
	assert.False(t, src[0].Done())
}
