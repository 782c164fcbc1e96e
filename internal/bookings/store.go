package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/HeshanJay/hotel-manager-app/internal/aws"
)

// ErrDuplicateBooking indicates the booking id is already taken. The
// conditional write makes the check-and-insert atomic, so two concurrent
// submissions of the same id cannot both succeed.
var ErrDuplicateBooking = errors.New("booking id already exists")

// ErrStatusMismatch indicates a conditional status transition failed.
var ErrStatusMismatch = errors.New("status mismatch/conditional failed")

// Store encapsulates operations on the bookings table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new bookings Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Create persists a booking only if its id is unused, via a conditional
// PutItem on attribute_not_exists(booking_id). Returns ErrDuplicateBooking
// when the id is taken.
func (s *Store) Create(ctx context.Context, booking Booking) error {
	now := s.nowFunc()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(booking_id)"),
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("put booking: %w", err)
	}
	return nil
}

// Exists reports whether a booking id is already taken.
func (s *Store) Exists(ctx context.Context, bookingID string) (bool, error) {
	b, err := s.Get(ctx, bookingID)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// Get fetches a booking by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, bookingID string) (*Booking, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var b Booking
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, fmt.Errorf("unmarshal booking: %w", err)
	}
	return &b, nil
}

// UpdateStatus conditionally transitions the booking from expectedStatus to
// newStatus. Returns ErrStatusMismatch if the condition failed.
func (s *Store) UpdateStatus(ctx context.Context, bookingID, expectedStatus, newStatus string) error {
	now := s.nowFunc()
	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		UpdateExpression:         awsString("SET #s = :new, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":      &types.AttributeValueMemberS{Value: newStatus},
			":expected": &types.AttributeValueMemberS{Value: expectedStatus},
			":ua":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
		ConditionExpression: awsString("#s = :expected"),
	}

	if _, err := s.client.UpdateItem(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return ErrStatusMismatch
		}
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

func awsString(s string) *string { return &s }
