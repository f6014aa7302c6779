package tag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"body", Body},
		{"div", Div},
		{"p", P},
		{"", Text},
		{"span", Undefined},
		{"DIV", Undefined},
		{"custom-element", Undefined},
		{"/div", Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromName(tt.name))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Div", Div.String())
	require.Equal(t, "Undefined", Undefined.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
}

func TestParseKind(t *testing.T) {
	for k := Kind(0); k < NumKinds; k++ {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := ParseKind("Span")
	require.Error(t, err)
}

func TestKindJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Kind{"tag": P})
	require.NoError(t, err)
	require.JSONEq(t, `{"tag":"P"}`, string(b))

	var got struct {
		Tag Kind `json:"tag"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tag":"Body"}`), &got))
	require.Equal(t, Body, got.Tag)

	require.Error(t, json.Unmarshal([]byte(`{"tag":"Nope"}`), &got))

	_, err = json.Marshal(Kind(-1))
	require.Error(t, err)
}

func TestTable(t *testing.T) {
	names := map[string]Kind{"section": Div, "para": P}
	table := NewTable(names, Undefined)

	// the table must not observe later changes to the source map
	names["section"] = Body

	lookup := table.Lookup()
	require.Equal(t, Div, lookup("section"))
	require.Equal(t, P, lookup("para"))
	require.Equal(t, Undefined, lookup("div"))

	strict := NewTable(nil, Body)
	require.Equal(t, Body, strict.Kind("anything"))
}
