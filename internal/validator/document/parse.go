package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ErrEmptyDocument is returned when the input holds no JSON value
var ErrEmptyDocument = errors.New("empty document")

// ErrInvalidSyntax is returned when the input is not well-formed JSON
var ErrInvalidSyntax = errors.New("invalid JSON")

// Parse decodes exactly one JSON document.
// Duplicate object keys keep their first position and take the last value.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, ErrEmptyDocument
	}
	// The token stream does not check separators or literal spelling
	if err := checkSyntax(data); err != nil {
		return Value{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyDocument
		}
		return Value{}, err
	}

	// Anything after the first value is an error
	if tok, err := dec.Token(); err == nil {
		return Value{}, fmt.Errorf("unexpected trailing content: %v", tok)
	} else if !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("unexpected trailing content: %w", err)
	}

	return v, nil
}

func checkSyntax(data []byte) error {
	if json.Valid(data) {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSyntax, err)
	}
	return ErrInvalidSyntax
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case float64:
		return Number(fmt.Sprint(t)), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	}
	return Value{}, fmt.Errorf("unexpected token %T", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{Kind: KindObject, Members: []Member{}}
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}

		if i, dup := index[key]; dup {
			obj.Members[i].Value = val
			continue
		}
		index[key] = len(obj.Members)
		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Value{Kind: KindArray, Items: []Value{}}

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		arr.Items = append(arr.Items, val)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return Value{}, err
	}
	return arr, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}

// unexpectedEOF turns a bare io.EOF inside a container into a syntax error
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
