package proto

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Field names used in request structs and account records.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldID              = "id"
	FieldAccountName     = "account_name"
	FieldAccountPassword = "account_password"
)

// Account is the wire form of one stored credential.
type Account struct {
	ID       int64
	Name     string
	Password string
}

// NewCredentialsRequest builds the Register and Login request.
func NewCredentialsRequest(username, password string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldUsername: structpb.NewStringValue(username),
		FieldPassword: structpb.NewStringValue(password),
	}}
}

// NewAddAccountRequest builds the AddAccount request.
func NewAddAccountRequest(name, password string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldAccountName:     structpb.NewStringValue(name),
		FieldAccountPassword: structpb.NewStringValue(password),
	}}
}

// StringField returns the string field name of s, or "" when it is absent.
// A field of any other kind is an error.
func StringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", fmt.Errorf("field %q must be a string", name)
	}
}

// EncodeAccounts renders accounts as a list of {id, account_name,
// account_password} structs. Ids travel as decimal strings: a struct number is
// a float64 and cannot carry every int64.
func EncodeAccounts(accounts []Account) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(accounts))
	for _, a := range accounts {
		values = append(values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			FieldID:              structpb.NewStringValue(strconv.FormatInt(a.ID, 10)),
			FieldAccountName:     structpb.NewStringValue(a.Name),
			FieldAccountPassword: structpb.NewStringValue(a.Password),
		}}))
	}
	return &structpb.ListValue{Values: values}
}

// DecodeAccounts is the inverse of EncodeAccounts.
func DecodeAccounts(list *structpb.ListValue) ([]Account, error) {
	accounts := make([]Account, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("account %d is not a struct", i)
		}
		raw, ok := s.GetFields()[FieldID].GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("account %d has no id", i)
		}
		id, err := strconv.ParseInt(raw.StringValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("account %d has a malformed id: %w", i, err)
		}
		name, err := StringField(s, FieldAccountName)
		if err != nil {
			return nil, err
		}
		password, err := StringField(s, FieldAccountPassword)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, Account{ID: id, Name: name, Password: password})
	}
	return accounts, nil
}
