package proto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestStringField(t *testing.T) {
	s := NewCredentialsRequest("alice", "p1")

	v, err := StringField(s, FieldUsername)
	require.NoError(t, err)
	assert.Equal(t, "alice", v)

	v, err = StringField(s, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = StringField(nil, FieldUsername)
	require.NoError(t, err)
	assert.Empty(t, v)

	s.Fields["n"] = structpb.NewNumberValue(3)
	_, err = StringField(s, "n")
	require.Error(t, err)

	s.Fields["null"] = structpb.NewNullValue()
	v, err = StringField(s, "null")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestAccountsRoundTrip(t *testing.T) {
	in := []Account{
		{ID: 1, Name: "bank", Password: "secret"},
		{ID: 9, Name: "mail", Password: ""},
		{ID: math.MaxInt64, Name: "big", Password: "x"},
		{ID: 1<<53 + 1, Name: "past float precision", Password: "y"},
	}

	out, err := DecodeAccounts(EncodeAccounts(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = DecodeAccounts(EncodeAccounts(nil))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeAccounts_Malformed(t *testing.T) {
	list := &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("x")}}
	_, err := DecodeAccounts(list)
	require.Error(t, err)

	list = &structpb.ListValue{Values: []*structpb.Value{
		structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			FieldAccountName: structpb.NewStringValue("bank"),
		}}),
	}}
	_, err = DecodeAccounts(list)
	require.Error(t, err)

	for _, id := range []*structpb.Value{
		structpb.NewNumberValue(3),
		structpb.NewStringValue("3x"),
		structpb.NewStringValue(""),
	} {
		list = &structpb.ListValue{Values: []*structpb.Value{
			structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
				FieldID:          id,
				FieldAccountName: structpb.NewStringValue("bank"),
			}}),
		}}
		_, err = DecodeAccounts(list)
		require.Error(t, err, "id %v", id)
	}
}

func TestEncodeAccounts_IDIsDecimalString(t *testing.T) {
	list := EncodeAccounts([]Account{{ID: 1<<53 + 1, Name: "bank"}})
	require.Len(t, list.GetValues(), 1)
	assert.Equal(t, "9007199254740993", list.GetValues()[0].GetStructValue().GetFields()[FieldID].GetStringValue())
}
