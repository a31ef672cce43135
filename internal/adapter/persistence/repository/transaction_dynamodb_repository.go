package repository

import (
	"context"
	"time"

	"payu_billing/internal/domain/entities"
	"payu_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	UUID            string            `dynamodbav:"uuid"`
	Amount          float64           `dynamodbav:"amount"`
	Currency        string            `dynamodbav:"currency"`
	State           string            `dynamodbav:"state"`
	Data            map[string]string `dynamodbav:"data,omitempty"`
	PaymentMethodID string            `dynamodbav:"payment_method_id"`
	ProcessorRef    string            `dynamodbav:"processor_ref"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: uuid (string)
//
// The uuid doubles as the gateway's EXTERNAL_REF, so notification lookups
// resolve by PK directly.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#uuid)"),
		ExpressionAttributeNames: map[string]string{
			"#uuid": "uuid",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByUUID(ctx context.Context, uuid string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uuid": &types.AttributeValueMemberS{Value: uuid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Save(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	t.UpdatedAt = time.Now().UTC()
	it := toTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		UUID:            t.UUID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		State:           string(t.State),
		Data:            t.Data,
		PaymentMethodID: t.PaymentMethodID,
		ProcessorRef:    t.ProcessorRef,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Transaction{
		UUID:            it.UUID,
		Amount:          it.Amount,
		Currency:        it.Currency,
		State:           entities.TransactionState(it.State),
		Data:            it.Data,
		PaymentMethodID: it.PaymentMethodID,
		ProcessorRef:    it.ProcessorRef,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
