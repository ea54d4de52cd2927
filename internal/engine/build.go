package engine

import "strings"

// sectionSeparator joins top-level sections of the assembled prompt.
const sectionSeparator = "\n\n---\n\n"

// BuildPrompt assembles the full Markdown prompt for one category.
// Section order is fixed; sections whose trimmed text is empty are dropped.
func BuildPrompt(s Settings, tab TabInputs) string {
	sections := []string{
		buildRoleAndContext(s),
		buildAIPolicyAndMode(s),
		buildOutlineModeSetting(s),
		buildToneSetting(s),
		buildCommonOptions(s),
		buildTabContent(s, tab),
		buildReflectionPattern(s),
	}

	kept := sections[:0]
	for _, sec := range sections {
		if strings.TrimSpace(sec) != "" {
			kept = append(kept, sec)
		}
	}
	return strings.Join(kept, sectionSeparator)
}

func buildTabContent(s Settings, tab TabInputs) string {
	switch in := tab.(type) {
	case ReportEssayInputs:
		return buildReportEssay(s, in)
	case ExamInputs:
		return buildExam(s, in)
	case CodingInputs:
		return buildCoding(s, in)
	case ResearchInputs:
		return buildResearch(s, in)
	case CareerEmailInputs:
		return buildCareerEmail(s, in)
	case ImageInputs:
		return buildImage(s, in)
	default:
		return ""
	}
}
