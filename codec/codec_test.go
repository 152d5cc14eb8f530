package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Prediction int       `json:"prediction"`
	Class      string    `json:"class"`
	Neighbors  []int     `json:"neighbors"`
	Distances  []float64 `json:"distances"`
}

func TestCodecs(t *testing.T) {
	in := report{Prediction: 1, Class: "Prediabetes or Diabetes", Neighbors: []int{4, 9}, Distances: []float64{0.5, 1.25}}

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name, "")
			require.True(t, ok)
			assert.Equal(t, name, c.Name())

			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, in))
			assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
			assert.JSONEq(t, `{"prediction":1,"class":"Prediabetes or Diabetes","neighbors":[4,9],"distances":[0.5,1.25]}`, buf.String())

			var out report
			require.NoError(t, c.Decode(&buf, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestIndent(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name, "  ")
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, map[string]int{"k": 3}))
			assert.Equal(t, "{\n  \"k\": 3\n}\n", buf.String())
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	_, ok := ByName("msgpack", "")
	assert.False(t, ok)
}

func TestGoJSONDecodeStrict(t *testing.T) {
	var out report
	err := GoJSON{}.Decode(strings.NewReader(`{"prediction":0,"extra":true}`), &out)
	require.Error(t, err)

	require.NoError(t, JSON{}.Decode(strings.NewReader(`{"prediction":1,"extra":true}`), &out))
	assert.Equal(t, 1, out.Prediction)
}
