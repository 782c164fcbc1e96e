package staff

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
)

// ErrDuplicateEmployee indicates the employee id is already taken.
var ErrDuplicateEmployee = errors.New("employee id already exists")

// counterKey is the PK of the sequence item used for EMP#### id generation.
const counterKey = "_employee_id_counter"

// Store encapsulates operations on the employees table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new employees Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists an employee only if the id is unused. Returns
// ErrDuplicateEmployee when the id is taken.
func (s *Store) Create(ctx context.Context, employee Employee) error {
	now := s.nowFunc()
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = now
	}
	employee.UpdatedAt = now

	item, err := attributevalue.MarshalMap(employee)
	if err != nil {
		return fmt.Errorf("marshal employee: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(employee_id)"),
	}
	if _, err := s.client.PutItem(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrDuplicateEmployee
		}
		return fmt.Errorf("put employee: %w", err)
	}
	return nil
}

// Get fetches an employee by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var e Employee
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, fmt.Errorf("unmarshal employee: %w", err)
	}
	return &e, nil
}

// NextEmployeeID reserves the next EMP#### id from an atomic counter item.
// On counter failure it falls back to a random id; the conditional create
// still guards against a collision.
func (s *Store) NextEmployeeID(ctx context.Context) (string, error) {
	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: counterKey},
		},
		UpdateExpression: awsString("SET seq = if_not_exists(seq, :zero) + :inc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	}
	out, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		return fmt.Sprintf("EMP%04d", rand.Intn(10000)), fmt.Errorf("increment employee counter: %w", err)
	}
	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Sprintf("EMP%04d", rand.Intn(10000)), fmt.Errorf("employee counter returned no sequence")
	}
	n, err := strconv.Atoi(seq.Value)
	if err != nil {
		return fmt.Sprintf("EMP%04d", rand.Intn(10000)), fmt.Errorf("parse employee counter: %w", err)
	}
	return fmt.Sprintf("EMP%04d", n), nil
}

func awsString(s string) *string { return &s }
