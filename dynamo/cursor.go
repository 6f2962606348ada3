package dynamo

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// encodeCursor turns a page's last key into an opaque string for clients.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	raw, err := attributevalue.MarshalMapJSON(key)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(raw), nil
}

func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("cursor is not base64: %w", err)
	}

	key, err := attributevalue.UnmarshalMapJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("cursor is not a key: %w", err)
	}

	return key, nil
}

// keyOf projects item onto the attribute names of a LastEvaluatedKey.
func keyOf(lastEvaluated map[string]types.AttributeValue, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	key := make(map[string]types.AttributeValue, len(lastEvaluated))
	for name := range lastEvaluated {
		key[name] = item[name]
	}
	return key
}
