package cache

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the DynamoDB cache.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// dynamoEntry is the item stored per response. Expiration mirrors Expires as a
// unix timestamp so the table's native TTL can reap entries too.
type dynamoEntry struct {
	Key        string `dynamodbav:"Key"`
	Payload    string `dynamodbav:"Payload"`
	Expires    string `dynamodbav:"Expires"`
	Expiration int64  `dynamodbav:"Expiration,omitempty"`
}

type dynamoKey struct {
	Key string `dynamodbav:"Key"`
}

// DynamoDB caches responses in a DynamoDB table keyed by the string attribute "Key".
type DynamoDB struct {
	ddb       DynamoDBAPI
	tableName string
	opts      options
}

// NewDynamoDB returns a cache backed by tableName using the given client.
func NewDynamoDB(ddb DynamoDBAPI, tableName string, opts ...Option) *DynamoDB {
	return &DynamoDB{ddb: ddb, tableName: tableName, opts: buildOptions(opts)}
}

// NewDynamoDBFromEnv builds the client from the default AWS configuration chain.
func NewDynamoDBFromEnv(ctx context.Context, tableName string, opts ...Option) (*DynamoDB, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewDynamoDB(dynamodb.NewFromConfig(cfg), tableName, opts...), nil
}

func (d *DynamoDB) key(key string) (map[string]types.AttributeValue, error) {
	k, err := attributevalue.MarshalMap(dynamoKey{Key: key})
	if err != nil {
		return nil, fmt.Errorf("could not marshal cache key: %w", err)
	}
	return k, nil
}

// Get returns the payload stored under key, ignoring entries past their expiry.
func (d *DynamoDB) Get(key string) (string, bool, error) {
	k, err := d.key(key)
	if err != nil {
		return "", false, err
	}

	out, err := d.ddb.GetItem(context.TODO(), &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       k,
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get cache entry: %w", err)
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var entry dynamoEntry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		return "", false, fmt.Errorf("could not unmarshal cache entry: %w", err)
	}
	if entry.Expires < d.opts.today() {
		return "", false, nil
	}
	return entry.Payload, true, nil
}

// Store writes payload under key.
func (d *DynamoDB) Store(key, payload string) error {
	entry := dynamoEntry{
		Key:     key,
		Payload: payload,
		Expires: d.opts.expiry(),
	}
	if ttl := d.opts.ttl(); ttl > 0 {
		entry.Expiration = d.opts.now().Add(ttl).Unix()
	}

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("could not marshal cache entry: %w", err)
	}

	_, err = d.ddb.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Sweep deletes entries whose expiry is before today.
func (d *DynamoDB) Sweep() error {
	filter := map[string]types.AttributeValue{
		":today": &types.AttributeValueMemberS{Value: d.opts.today()},
	}
	return d.deleteMatching(aws.String("Expires < :today"), filter)
}

// Clear deletes every entry.
func (d *DynamoDB) Clear() error {
	return d.deleteMatching(nil, nil)
}

func (d *DynamoDB) deleteMatching(filter *string, values map[string]types.AttributeValue) error {
	ctx := context.TODO()
	var start map[string]types.AttributeValue
	for {
		out, err := d.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(d.tableName),
			FilterExpression:          filter,
			ExpressionAttributeValues: values,
			ProjectionExpression:      aws.String("#k"),
			ExpressionAttributeNames:  map[string]string{"#k": "Key"},
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return fmt.Errorf("failed to scan cache table: %w", err)
		}

		var keys []dynamoKey
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &keys); err != nil {
			return fmt.Errorf("could not unmarshal cache keys: %w", err)
		}
		for _, k := range keys {
			key, err := d.key(k.Key)
			if err != nil {
				return err
			}
			if _, err := d.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(d.tableName),
				Key:       key,
			}); err != nil {
				return fmt.Errorf("failed to delete cache entry: %w", err)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		start = out.LastEvaluatedKey
	}
}

func (d *DynamoDB) Close() error {
	return nil
}
