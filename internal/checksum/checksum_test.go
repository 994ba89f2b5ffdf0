package checksum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_SameReferenceTwice(t *testing.T) {
	obj := map[string]any{
		"name":  "Landing page",
		"tags":  []any{"web", "draft"},
		"count": float64(3),
	}

	first := Sum(obj)
	second := Sum(obj)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // sha256 hex
}

func TestSum_KeyOrderIndependent(t *testing.T) {
	// map в Go и так не упорядочен, поэтому собираем два экземпляра
	// в разном порядке вставки и с разной историей мутаций
	a := map[string]any{}
	a["alpha"] = "1"
	a["beta"] = "2"
	a["gamma"] = map[string]any{"x": float64(1), "y": float64(2)}

	b := map[string]any{}
	b["gamma"] = map[string]any{"y": float64(2), "x": float64(1)}
	b["beta"] = "2"
	b["alpha"] = "1"
	b["extra"] = "tmp"
	delete(b, "extra")

	assert.Equal(t, Sum(a), Sum(b))
}

func TestSum_DifferentContentDiffers(t *testing.T) {
	a := map[string]any{"name": "one"}
	b := map[string]any{"name": "two"}

	assert.NotEqual(t, Sum(a), Sum(b))
}

func TestSum_SelfReferentialMap(t *testing.T) {
	m := map[string]any{"name": "loop"}
	m["self"] = m

	var digest string
	require.NotPanics(t, func() {
		digest = Sum(m)
	})
	assert.NotEmpty(t, digest)
	assert.Equal(t, digest, Sum(m))
}

func TestSum_SelfReferentialSlice(t *testing.T) {
	s := make([]any, 1)
	s[0] = s

	require.NotPanics(t, func() {
		_ = Sum(s)
	})
}

func TestSum_PointerCycle(t *testing.T) {
	type node struct {
		Name string `json:"name"`
		Next *node  `json:"next"`
	}
	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b

	var digest string
	require.NotPanics(t, func() {
		digest = Sum(a)
	})
	assert.Equal(t, digest, Sum(a))
	// цикл другого содержимого дает другой дайджест
	c := &node{Name: "c"}
	c.Next = c
	assert.NotEqual(t, digest, Sum(c))
}

func TestSum_SharedSubtreeIsNotACycle(t *testing.T) {
	shared := map[string]any{"x": float64(1)}
	obj := map[string]any{"left": shared, "right": shared}

	expanded := map[string]any{
		"left":  map[string]any{"x": float64(1)},
		"right": map[string]any{"x": float64(1)},
	}

	// один и тот же поддокумент в двух ветках - не цикл,
	// содержимое должно кодироваться полностью в обеих
	assert.Equal(t, Sum(expanded), Sum(obj))
}

func TestSum_IntAndFloatEquivalent(t *testing.T) {
	// JSON round-trip превращает int в float64, дайджест не должен меняться
	assert.Equal(t, Sum(map[string]any{"n": 1}), Sum(map[string]any{"n": float64(1)}))
}

func TestSum_NilValues(t *testing.T) {
	assert.Equal(t, Sum(nil), Sum(nil))
	assert.NotEqual(t, Sum(nil), Sum(map[string]any{}))

	var m map[string]any
	var s []any
	assert.Equal(t, Sum(nil), Sum(m))
	assert.Equal(t, Sum(nil), Sum(s))
}

func TestSum_StructsRespectJSONTags(t *testing.T) {
	type entity struct {
		Name    string `json:"name"`
		Ignored string `json:"-"`
		private string
	}
	a := entity{Name: "doc", Ignored: "x", private: "y"}
	b := entity{Name: "doc", Ignored: "z", private: "w"}

	assert.Equal(t, Sum(a), Sum(b))
	assert.Equal(t, Sum(a), Sum(map[string]any{"name": "doc"}))
}

func TestSum_TimeValues(t *testing.T) {
	ts := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	inMoscow := ts.In(time.FixedZone("MSK", 3*3600))

	// одинаковый момент времени в разных зонах - одинаковый дайджест
	assert.Equal(t, Sum(ts), Sum(inMoscow))
	assert.NotEqual(t, Sum(ts), Sum(ts.Add(time.Second)))
}

func TestSumChanges_OrderSensitive(t *testing.T) {
	type change struct {
		ID string `json:"id"`
	}
	a := []*change{{ID: "1"}, {ID: "2"}}
	b := []*change{{ID: "2"}, {ID: "1"}}

	// список изменений упорядочен, перестановка меняет дайджест
	assert.NotEqual(t, SumChanges(a), SumChanges(b))
	assert.Equal(t, SumChanges(a), SumChanges([]*change{{ID: "1"}, {ID: "2"}}))
}
