package constants

const QueueBulkExecute = "payout.bulk.execute"
