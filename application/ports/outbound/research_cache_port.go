package outbound

import "github.com/abdulwahabthakur/AI-Podcast-Generator/domain"

type ResearchCachePort interface {
	Get(key string) (domain.ResearchOutput, bool)
	Set(key string, value domain.ResearchOutput)
}
