package repository

import (
	"context"
	"strconv"

	"quanngon_payments/internal/domain/entities"
	"quanngon_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPendingPaymentsTableName = "pending_payments"
	maxBatchDeleteSize              = 25
)

type momoResponseItem struct {
	ResultCode   int    `dynamodbav:"result_code"`
	Message      string `dynamodbav:"message"`
	PayType      string `dynamodbav:"pay_type"`
	ResponseTime int64  `dynamodbav:"response_time"`
}

type pendingPaymentItem struct {
	RestaurantID  string            `dynamodbav:"restaurant_id"`
	OrderID       string            `dynamodbav:"order_id"`
	Status        string            `dynamodbav:"status"`
	CreatedAt     int64             `dynamodbav:"created_at"`
	CompletedAt   int64             `dynamodbav:"completed_at,omitempty"`
	TransactionID string            `dynamodbav:"transaction_id,omitempty"`
	MomoOrderID   string            `dynamodbav:"momo_order_id,omitempty"`
	Amount        int64             `dynamodbav:"amount,omitempty"`
	MomoResponse  *momoResponseItem `dynamodbav:"momo_response,omitempty"`
}

// PendingPaymentDynamoRepository persists PendingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: restaurant_id (string)
//   - SK: order_id (string)

type PendingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingPaymentRepository = (*PendingPaymentDynamoRepository)(nil)

func NewPendingPaymentDynamoRepository(ddb *dynamodb.Client) *PendingPaymentDynamoRepository {
	return &PendingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_PAYMENTS_TABLE", defaultPendingPaymentsTableName),
	}
}

func (r *PendingPaymentDynamoRepository) GetByKey(ctx context.Context, restaurantID, orderID string) (entities.PendingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            paymentKeyAttributes(restaurantID, orderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingPayment{}, nil
	}

	var it pendingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingPayment{}, err
	}
	return fromPendingPaymentItem(it), nil
}

// ListAll scans the whole table. The per-restaurant pending set is small by
// contract, so a paginated scan is acceptable here; callers stay behind this
// method so an index could replace it later.
func (r *PendingPaymentDynamoRepository) ListAll(ctx context.Context) ([]entities.PendingPayment, error) {
	var (
		records           []entities.PendingPayment
		exclusiveStartKey map[string]types.AttributeValue
	)

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: exclusiveStartKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it pendingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPendingPaymentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		exclusiveStartKey = out.LastEvaluatedKey
	}
}

// Complete applies the pending -> completed transition as a guarded partial
// update. The condition admits exactly two cases: the record is still
// pending, or it was already completed by this same transaction (idempotent
// re-delivery). Anything else fails the conditional check.
func (r *PendingPaymentDynamoRepository) Complete(ctx context.Context, restaurantID, orderID string, c entities.PaymentCompletion) (entities.PendingPayment, error) {
	updateExpr := "SET #status = :completed, #transaction_id = :tid, #completed_at = :completed_at"
	values := map[string]types.AttributeValue{
		":completed":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
		":pending":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		":tid":          &types.AttributeValueMemberS{Value: c.TransactionID},
		":completed_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(c.CompletedAt, 10)},
	}
	names := map[string]string{
		"#status":         "status",
		"#transaction_id": "transaction_id",
		"#completed_at":   "completed_at",
		"#restaurant_id":  "restaurant_id",
	}

	if c.MomoOrderID != "" {
		updateExpr += ", #momo_order_id = :momo_order_id"
		names["#momo_order_id"] = "momo_order_id"
		values[":momo_order_id"] = &types.AttributeValueMemberS{Value: c.MomoOrderID}
	}
	if c.Amount != 0 {
		updateExpr += ", #amount = :amount"
		names["#amount"] = "amount"
		values[":amount"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(c.Amount, 10)}
	}
	if c.MomoResponse != nil {
		av, err := attributevalue.Marshal(momoResponseItem{
			ResultCode:   c.MomoResponse.ResultCode,
			Message:      c.MomoResponse.Message,
			PayType:      c.MomoResponse.PayType,
			ResponseTime: c.MomoResponse.ResponseTime,
		})
		if err != nil {
			return entities.PendingPayment{}, err
		}
		updateExpr += ", #momo_response = :momo_response"
		names["#momo_response"] = "momo_response"
		values[":momo_response"] = av
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       paymentKeyAttributes(restaurantID, orderID),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#restaurant_id) AND (#status = :pending OR (#status = :completed AND #transaction_id = :tid))"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PendingPayment{}, err
	}

	var it pendingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PendingPayment{}, err
	}
	return fromPendingPaymentItem(it), nil
}

// DeleteBatch removes the given records in BatchWriteItem chunks, resubmitting
// unprocessed keys. Returns how many deletes were submitted.
func (r *PendingPaymentDynamoRepository) DeleteBatch(ctx context.Context, keys []entities.PaymentKey) (int, error) {
	deleted := 0

	for start := 0; start < len(keys); start += maxBatchDeleteSize {
		end := start + maxBatchDeleteSize
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: paymentKeyAttributes(key.RestaurantID, key.OrderID),
				},
			})
		}

		for len(requests) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{r.tableName: requests},
			})
			if err != nil {
				return deleted, err
			}
			deleted += len(requests) - len(out.UnprocessedItems[r.tableName])
			requests = out.UnprocessedItems[r.tableName]
		}
	}

	return deleted, nil
}

func paymentKeyAttributes(restaurantID, orderID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"restaurant_id": &types.AttributeValueMemberS{Value: restaurantID},
		"order_id":      &types.AttributeValueMemberS{Value: orderID},
	}
}

func fromPendingPaymentItem(it pendingPaymentItem) entities.PendingPayment {
	p := entities.PendingPayment{
		RestaurantID:  it.RestaurantID,
		OrderID:       it.OrderID,
		Status:        entities.PaymentStatus(it.Status),
		CreatedAt:     it.CreatedAt,
		CompletedAt:   it.CompletedAt,
		TransactionID: it.TransactionID,
		MomoOrderID:   it.MomoOrderID,
		Amount:        it.Amount,
	}
	if it.MomoResponse != nil {
		p.MomoResponse = &entities.MomoResponse{
			ResultCode:   it.MomoResponse.ResultCode,
			Message:      it.MomoResponse.Message,
			PayType:      it.MomoResponse.PayType,
			ResponseTime: it.MomoResponse.ResponseTime,
		}
	}
	return p
}
