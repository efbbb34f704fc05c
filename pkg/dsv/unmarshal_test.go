package dsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestUnmarshalRawRows(t *testing.T) {
	var rows [][]string
	err := dsv.Unmarshal("name,age\nAlice,30\nBob,25", &rows)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "age"},
		{"Alice", "30"},
		{"Bob", "25"},
	}, rows)
}

func TestUnmarshalStructs(t *testing.T) {
	var people []person
	err := dsv.Unmarshal("name,age,city\nAlice,30,Paris\nBob,25,Oslo", &people)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, person{Name: "Alice", Age: 30, City: "Paris"}, people[0])
	assert.Equal(t, person{Name: "Bob", Age: 25, City: "Oslo"}, people[1])
}

func TestUnmarshalHeaderMatching(t *testing.T) {
	t.Run("case insensitive tag match", func(t *testing.T) {
		var people []person
		err := dsv.Unmarshal("NAME,AGE,CITY\nAlice,30,Paris", &people)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Alice", people[0].Name)
	})

	t.Run("field name fallback", func(t *testing.T) {
		type row struct {
			Count int
		}
		var rows []row
		err := dsv.Unmarshal("count\n7", &rows)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 7, rows[0].Count)
	})

	t.Run("unknown columns ignored, missing fields zero", func(t *testing.T) {
		var people []person
		err := dsv.Unmarshal("name,shoe_size\nAlice,38", &people)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Alice", people[0].Name)
		assert.Zero(t, people[0].Age)
	})
}

func TestUnmarshalTypes(t *testing.T) {
	type row struct {
		S  string  `dsv:"s"`
		I  int     `dsv:"i"`
		U  uint8   `dsv:"u"`
		F  float64 `dsv:"f"`
		B  bool    `dsv:"b"`
		PI *int    `dsv:"pi"`
	}

	var rows []row
	err := dsv.Unmarshal("s,i,u,f,b,pi\nx,-3,200,1.5,true,9\ny,0,0,0,false,", &rows)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "x", rows[0].S)
	assert.Equal(t, -3, rows[0].I)
	assert.Equal(t, uint8(200), rows[0].U)
	assert.Equal(t, 1.5, rows[0].F)
	assert.True(t, rows[0].B)
	require.NotNil(t, rows[0].PI)
	assert.Equal(t, 9, *rows[0].PI)

	// Empty field leaves the pointer nil and values zero.
	assert.Nil(t, rows[1].PI)
	assert.False(t, rows[1].B)
}

func TestUnmarshalConversionError(t *testing.T) {
	type row struct {
		N int `dsv:"n"`
	}
	var rows []row
	err := dsv.Unmarshal("n\nnot-a-number", &rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"n"`)
}

func TestUnmarshalTargetErrors(t *testing.T) {
	assert.Error(t, dsv.Unmarshal("a,b", nil))

	var people []person
	assert.Error(t, dsv.Unmarshal("a,b", people)) // non-pointer

	var s string
	assert.Error(t, dsv.Unmarshal("a,b", &s)) // not a slice

	var bad []map[string]string
	assert.Error(t, dsv.Unmarshal("a,b", &bad))
}

func TestUnmarshalEmptyInput(t *testing.T) {
	var people []person
	err := dsv.Unmarshal("", &people)
	require.NoError(t, err)
	assert.Empty(t, people)

	var rows [][]string
	err = dsv.Unmarshal("   \n  \n", &rows)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUnmarshalParseError(t *testing.T) {
	var rows [][]string
	err := dsv.Unmarshal("a,\"oops", &rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, dsv.ErrUnterminatedQuote)
}

func TestUnmarshalWithOptions(t *testing.T) {
	opts := dsv.DefaultParseOptions()
	opts.Comma = ';'

	var people []person
	err := dsv.UnmarshalWithOptions("name;age;city\nAlice;30;Paris", &people, opts)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, 30, people[0].Age)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	people := []person{
		{Name: "Alice", Age: 30, City: "Paris"},
		{Name: "Bob", Age: 25, City: "Oslo"},
	}

	out, err := dsv.Marshal(people)
	require.NoError(t, err)

	var back []person
	require.NoError(t, dsv.Unmarshal(out, &back))
	assert.Equal(t, people, back)
}
