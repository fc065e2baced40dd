package merger

// batchSchema validates the structural shape of the trigger payload. Identity
// fields are checked per instance by InstanceConfig.Validate so a single
// incomplete entry cannot fail the whole batch.
const batchSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"projectId": { "type": "string" },
			"instanceId": { "type": "string" },
			"scalerPubSubTopic": { "type": "string" },
			"minNodes": { "type": "integer", "minimum": 1 },
			"maxNodes": { "type": "integer", "minimum": 1 },
			"stepSize": { "type": "integer", "minimum": 1 },
			"overloadStepSize": { "type": "integer", "minimum": 1 },
			"scaleOutCoolingMinutes": { "type": "integer", "minimum": 1 },
			"scaleInCoolingMinutes": { "type": "integer", "minimum": 1 },
			"scalingMethod": { "type": "string" },
			"metrics": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name": { "type": "string" },
						"filter": { "type": "string" },
						"reducer": { "type": "string" },
						"aligner": { "type": "string" },
						"period": { "type": "integer", "minimum": 1 },
						"regional_threshold": { "type": "number" },
						"multi_regional_threshold": { "type": "number" }
					},
					"required": ["name"]
				}
			}
		}
	}
}`
