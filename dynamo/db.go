package dynamo

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	gsi1 = "GSI1"

	// callTimeout bounds every single DynamoDB request made by the store.
	callTimeout = time.Second
)

// DB is the signup attempt store. Attempts live in one table keyed by PK/SK,
// and GSI1 lists them by state.
type DB struct {
	dynamoClient *dynamodb.Client
	tableName    string
}

func NewDB(dynamoClient *dynamodb.Client, tableName string) *DB {
	return &DB{
		dynamoClient: dynamoClient,
		tableName:    tableName,
	}
}
