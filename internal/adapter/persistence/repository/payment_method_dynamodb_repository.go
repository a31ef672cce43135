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

const defaultPaymentMethodsTableName = "payment_methods"

type paymentMethodItem struct {
	ID               string            `dynamodbav:"id"`
	CustomerID       string            `dynamodbav:"customer_id"`
	Token            string            `dynamodbav:"token,omitempty"`
	Verified         bool              `dynamodbav:"verified"`
	ArchivedCustomer map[string]string `dynamodbav:"archived_customer,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// PaymentMethodDynamoRepository persists PaymentMethod entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PaymentMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb *dynamodb.Client) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_METHODS_TABLE", defaultPaymentMethodsTableName),
	}
}

func (r *PaymentMethodDynamoRepository) Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	it := toPaymentMethodItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	return m, nil
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentMethod{}, nil
	}

	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentMethod{}, err
	}
	return fromPaymentMethodItem(it), nil
}

func (r *PaymentMethodDynamoRepository) Save(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	m.UpdatedAt = time.Now().UTC()
	it := toPaymentMethodItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	return m, nil
}

func toPaymentMethodItem(m entities.PaymentMethod) paymentMethodItem {
	return paymentMethodItem{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		Token:            m.Token,
		Verified:         m.Verified,
		ArchivedCustomer: m.ArchivedCustomer,
		CreatedAt:        m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentMethodItem(it paymentMethodItem) entities.PaymentMethod {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentMethod{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		Token:            it.Token,
		Verified:         it.Verified,
		ArchivedCustomer: it.ArchivedCustomer,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
