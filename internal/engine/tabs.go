package engine

import (
	"fmt"
	"strings"
)

// stage pairs an enabled flag with a renderer receiving the stage ordinal.
// Ordinals are positions within the filtered sequence of enabled stages, so
// disabling an earlier stage shifts later numbering down.
type stage struct {
	enabled bool
	render  func(ordinal int) string
}

func renderStages(stages []stage) []string {
	var out []string
	n := 0
	for _, st := range stages {
		if !st.enabled {
			continue
		}
		n++
		out = append(out, st.render(n))
	}
	return out
}

func buildReportEssay(s Settings, in ReportEssayInputs) string {
	parts := []string{"## 작업 지시: 레포트/에세이 작성\n"}

	if in.AssignmentSummary != "" {
		parts = append(parts, "### 과제 설명\n"+in.AssignmentSummary+"\n")
	}
	if in.Topic != "" {
		parts = append(parts, "### 주제\n"+in.Topic+"\n")
	}
	if in.RequiredSections != "" {
		parts = append(parts, "### 요구 목차/형식\n"+in.RequiredSections+"\n")
	}
	if in.LengthTarget != "" {
		parts = append(parts, "### 분량 목표\n"+in.LengthTarget+"\n")
	}
	if in.KeyPoints != "" {
		parts = append(parts, "### 반드시 포함할 논점\n"+in.KeyPoints+"\n")
	}
	if in.ProhibitedThings != "" {
		parts = append(parts, "### 피해야 할 것\n"+in.ProhibitedThings+"\n")
	}
	if in.AttachedMaterialSummary != "" {
		parts = append(parts, "### 참고 자료 요약\n"+in.AttachedMaterialSummary+"\n")
	}

	var enabled []string
	if in.StageCollectMaterial {
		enabled = append(enabled, "자료 조사")
	}
	if in.StageOutline {
		enabled = append(enabled, "아웃라인")
	}
	if in.StageDraft {
		enabled = append(enabled, "초안 작성")
	}
	if len(enabled) > 0 {
		parts = append(parts, "### 작업 단계\n다음 순서로 진행해 주세요: "+strings.Join(enabled, " → ")+"\n")
	}

	outlineShape := "서론-본론-결론 구조로"
	if in.RequiredSections != "" {
		outlineShape = "과제에서 요구한 형식에 맞춰"
	}
	lengthClause := "적절한 분량으로"
	if in.LengthTarget != "" {
		lengthClause = fmt.Sprintf("목표 분량(%s)에 맞춰", in.LengthTarget)
	}
	toneInstruction := ToneDraftInstruction(s.TonePreset)

	parts = append(parts, renderStages([]stage{
		{in.StageCollectMaterial, func(n int) string {
			return fmt.Sprintf(`
**%d단계: 자료 조사·정리**
- 주제와 관련된 키워드 후보를 5~10개 제시해 주세요.
- 각 키워드에 적합한 참고자료 유형(논문, 보고서, 뉴스 기사, 공식 통계 등)을 제안해 주세요.
- 자료를 효율적으로 정리하는 방법(표, 마인드맵, 개조식 등)도 안내해 주세요.
`, n)
		}},
		{in.StageOutline, func(n int) string {
			return fmt.Sprintf(`
**%d단계: 아웃라인 구성**
- %s 목차를 작성해 주세요.
- 각 단락의 핵심 논점, 뒷받침할 근거, 필요한 자료를 간략히 정리해 주세요.
- 문장 길이는 짧게, 구조 중심으로 작성해 주세요.
`, n, outlineShape)
		}},
		{in.StageDraft, func(n int) string {
			return fmt.Sprintf(`
**%d단계: 본문 초안 작성**
- %s 문단 단위 초안을 작성해 주세요.
- %s
- 각 문단의 주장-근거-예시 구조를 명확히 해 주세요.
`, n, lengthClause, toneInstruction)
		}},
	})...)

	return strings.Join(parts, "\n")
}

func buildExam(s Settings, in ExamInputs) string {
	parts := []string{"## 작업 지시: 시험 대비\n"}

	if in.ExamScope != "" {
		parts = append(parts, "### 시험 범위\n"+in.ExamScope+"\n")
	}
	if in.QuestionType != "" {
		parts = append(parts, "### 문제 유형\n"+in.QuestionType+" (서술형/계산형/혼합 등)\n")
	}
	if in.MyWeakPoints != "" {
		parts = append(parts, "### 나의 약점\n"+in.MyWeakPoints+"\n")
	}
	if in.TimeAvailable != "" {
		parts = append(parts, "### 남은 시간\n"+in.TimeAvailable+"\n")
	}

	if in.WantSummarySheet {
		parts = append(parts, `
### 요약 노트 요청
- 시험 범위를 개념 맵 형태로 요약해 주세요.
- 각 개념에 중요도(상/중/하)와 출제 가능성을 표시해 주세요.
- 핵심 공식, 정의, 예시를 간결하게 정리해 주세요.
`)
	}

	if in.WantPracticeSet {
		emphasis := "서술형과 계산형을 골고루"
		switch in.QuestionType {
		case "계산형":
			emphasis = "계산형 문제 위주로"
		case "서술형":
			emphasis = "서술형 문제 위주로"
		}
		parts = append(parts, fmt.Sprintf(`
### 예상 문제 세트 요청
- 예상 문제를 난이도 순(기초 → 중급 → 고급)으로 생성해 주세요.
- %s 출제해 주세요.
`, emphasis))

		if s.Mode == ModeLearning {
			parts = append(parts, `- 해설은 **단계별 힌트 → 풀이 과정 → 정답** 순서로 제시해 주세요.
- 먼저 학생에게 풀어볼 기회를 주고, 막히는 부분을 질문하면 그때 다음 힌트를 제공해 주세요.`)
		} else {
			parts = append(parts, `- 각 문제에 모범 답안과 채점 포인트를 함께 제시해 주세요.`)
		}
	}

	return strings.Join(parts, "\n")
}

func buildCoding(s Settings, in CodingInputs) string {
	parts := []string{"## 작업 지시: 코딩\n"}

	// Always emitted regardless of stage selection.
	parts = append(parts, `### 기본 요청사항
1. 먼저 요구 기능을 당신이 이해한 대로 다시 설명해 주세요.
2. step-by-step 구현 계획(폴더 구조, 주요 컴포넌트/함수)을 먼저 제시해 주세요.
`)

	if in.GoalDescription != "" {
		parts = append(parts, "### 구현 목표\n"+in.GoalDescription+"\n")
	}
	if in.TechStack != "" {
		parts = append(parts, "### 기술 스택\n"+in.TechStack+"\n")
	}
	if in.Constraints != "" {
		parts = append(parts, "### 제약 조건\n"+in.Constraints+"\n")
	}
	if in.CurrentCodeSnippet != "" {
		parts = append(parts, "### 현재 코드\n```\n"+in.CurrentCodeSnippet+"\n```\n\n"+
			"**코드 분석 요청:**\n"+
			"- 먼저 현재 코드의 오류나 개선 가능한 포인트를 설명해 주세요.\n"+
			"- 그 다음 개선된 코드와 개선 이유를 제시해 주세요.\n")
	}

	if in.WantStepPlan {
		parts = append(parts, `
### 단계별 계획 요청
계획을 더 세분화하여 다음 순서로 제시해 주세요:
1. **환경 설정**: 필요한 도구, 라이브러리 설치
2. **최소 동작 예제**: 핵심 기능만 동작하는 프로토타입
3. **기능 확장**: 추가 기능 구현
4. **테스트 및 리팩터링**: 버그 수정, 코드 정리
`)
	}

	if in.WantRefactor {
		parts = append(parts, `
### 리팩터링 요청
- 코드의 가독성, 유지보수성, 성능을 개선해 주세요.
- 변경 전후 비교와 개선 이유를 설명해 주세요.
`)
	}

	// Fixed footer for resource-constrained environments.
	parts = append(parts, `
### 실행 환경 고려사항
- 가능하면 단일 파일 또는 최소한의 의존성만 사용해 주세요.
- 실행 방법을 주석으로 명시해 주세요.
- 외부 유료 API는 사용하지 마세요.
`)

	return strings.Join(parts, "\n")
}

func buildResearch(s Settings, in ResearchInputs) string {
	parts := []string{"## 작업 지시: 연구/논문\n"}

	if in.ResearchTopic != "" {
		parts = append(parts, "### 연구 주제\n"+in.ResearchTopic+"\n")
	}
	if in.ResearchQuestion != "" {
		parts = append(parts, "### 연구 질문\n"+in.ResearchQuestion+"\n")
	}
	if in.Methodology != "" {
		parts = append(parts, "### 연구 방법론\n"+in.Methodology+"\n")
	}
	if in.TargetVenueOrClass != "" {
		parts = append(parts, "### 대상 학회/수업\n"+in.TargetVenueOrClass+"\n")
	}
	if in.ExistingWorkSummary != "" {
		parts = append(parts, "### 기존 연구 요약\n"+in.ExistingWorkSummary+"\n")
	}
	if in.LengthTarget != "" {
		parts = append(parts, "### 목표 분량\n"+in.LengthTarget+"\n")
	}

	if s.OutlineMode == OutlineOnly {
		parts = append(parts, `
### 구조화 요청 (아웃라인 모드)
다음 영역으로 나눈 연구 구조를 생성해 주세요:
1. **연구 목적**: 왜 이 연구가 필요한가?
2. **연구 질문**: 무엇을 밝히고자 하는가?
3. **가설**: 예상되는 결과는?
4. **방법**: 어떻게 연구할 것인가?
5. **기대 결과**: 어떤 결과가 예상되는가?
6. **한계**: 연구의 제한점은?
7. **참고문헌 영역**: 어떤 문헌을 참고해야 하는가?
`)
	} else {
		length := in.LengthTarget
		if length == "" {
			length = "적절한 분량"
		}
		parts = append(parts, fmt.Sprintf(`
### 본문 작성 요청 (완전 작성 모드)
연구계획서 형식으로 %s으로 작성해 주세요.
각 섹션(서론, 문헌검토, 연구방법, 예상결과, 결론)을 포함해 주세요.
`, length))
	}

	if s.IncludeReferences {
		parts = append(parts, `
### 선행연구 탐색 안내
- 검색 전략: 어떤 키워드 조합으로 검색해야 하는지
- 추천 데이터베이스: Web of Science, Scopus, Google Scholar, 국내 학술 DB (RISS, DBpia, KCI 등)
- 핵심 논문 5~10편 추천 (가능한 경우 DOI 포함)
`)
	}

	return strings.Join(parts, "\n")
}

const coverLetterStructure = `다음 구조로 아웃라인을 작성해 주세요:
1. **지원동기**: 왜 이 기업/연구실인가?
2. **관련 경험**: 어떤 경험이 있는가?
3. **역량**: 어떤 역량을 보유했는가?
4. **비전**: 입사 후 어떻게 기여하겠는가?`

const emailStructure = `다음 구조로 이메일을 구성해 주세요:
1. **제목**: 간결하고 목적이 명확한 제목
2. **인사**: 상대방에 맞는 적절한 인사말
3. **본문**: 상황 설명 → 요청/감사 내용 → 마무리
4. **서명**: 이름, 소속, 연락처`

func buildCareerEmail(s Settings, in CareerEmailInputs) string {
	isCoverLetter := in.DocumentType == "cover-letter"

	var parts []string
	if isCoverLetter {
		parts = append(parts, "## 작업 지시: 자기소개서/커버레터\n")
	} else {
		parts = append(parts, "## 작업 지시: 커리어/이메일\n")
		parts = append(parts, "### 이메일 유형\n"+EmailTypePhrase(in.EmailType)+"\n")
	}

	if in.Purpose != "" {
		parts = append(parts, "### 목적\n"+in.Purpose+"\n")
	}
	if in.ReceiverProfile != "" {
		parts = append(parts, "### 수신자/대상 정보\n"+in.ReceiverProfile+"\n")
	}
	if in.KeyPoints != "" {
		parts = append(parts, "### 핵심 내용/경험\n"+in.KeyPoints+"\n")
	}

	if in.WantCompanyResearch {
		parts = append(parts, `
### 기업/연구실 조사 (1단계)
다음 정보를 조사하고 정리해 주세요:
1. **사업/연구 분야**: 주요 사업 영역, 연구 분야
2. **최근 이슈**: 최근 뉴스, 프로젝트, 발표 등
3. **핵심 키워드**: 기업 문화, 핵심 가치, 인재상
4. **연결 아이디어**: 내 경험과 연결할 수 있는 포인트
`)
	}

	if in.WantOutline {
		if isCoverLetter {
			parts = append(parts, "\n### 자기소개서 구조 설계 (2단계)\n"+coverLetterStructure+"\n")
		} else {
			parts = append(parts, "\n### 이메일 구조 설계 (2단계)\n"+emailStructure+"\n")
		}
	}

	if in.WantFullWrite {
		if isCoverLetter {
			length := in.LengthPreset
			if length == "" {
				length = "적절한 분량"
			}
			parts = append(parts, fmt.Sprintf(`
### 자기소개서 완전 작성 (3단계)
위 구조에 따라 %s으로 자기소개서를 작성해 주세요.
- 구체적인 경험과 성과 중심으로 작성
- 해당 기업/연구실에 맞춤화된 내용
- 진정성 있는 어조 유지
`, length))
		} else {
			parts = append(parts, `
### 이메일 완전 작성 (3단계)
위 구조에 따라 이메일을 작성해 주세요.
- 한국어 극존대/공손체 사용
- 상황에 적합한 어조 유지
`)
			if in.LengthPreset != "" {
				parts = append(parts, "### 분량\n"+EmailLengthPhrase(in.LengthPreset)+"\n")
			}
		}
	}

	// Fallback rule: with no stage selected, emit the structure-design block
	// unconditionally so the prompt never comes out empty of instructions.
	if !in.WantOutline && !in.WantFullWrite && !in.WantCompanyResearch {
		if isCoverLetter {
			parts = append(parts, "\n### 자기소개서 구조 요청\n"+strings.Replace(coverLetterStructure, "아웃라인을 작성해", "작성해", 1)+"\n")
			if in.LengthPreset != "" {
				parts = append(parts, "### 분량\n"+in.LengthPreset+"\n")
			}
		} else {
			parts = append(parts, "\n### 이메일 구조 요청\n"+strings.Replace(emailStructure, "이메일을 구성해", "작성해", 1)+"\n\n- 한국어 극존대/공손체를 사용해 주세요.\n")
			if in.LengthPreset != "" {
				parts = append(parts, "### 분량\n"+EmailLengthPhrase(in.LengthPreset)+"\n")
			}
		}
	}

	return strings.Join(parts, "\n")
}

var emailLengthPhrases = map[string]string{
	"짧게 (5~7문장)":  "5~7문장 내외의 간결한 이메일",
	"보통 (8~12문장)": "8~12문장의 적절한 길이",
	"길게":          "상세한 설명이 포함된 긴 이메일",
}

// EmailLengthPhrase expands an email length preset; unknown presets pass
// through unchanged so user-supplied overrides survive.
func EmailLengthPhrase(preset string) string {
	if p, ok := emailLengthPhrases[preset]; ok {
		return p
	}
	return preset
}

func buildImage(s Settings, in ImageInputs) string {
	parts := []string{"## 작업 지시: 이미지 생성 프롬프트\n"}

	parts = append(parts, "**참고**: 이미지 생성기(Midjourney, DALL-E, Stable Diffusion 등)에서 바로 붙여넣을 수 있는 영어 중심 프롬프트를 생성해 주세요. 필요한 경우 한국어로 보충 설명을 달아 주세요.\n")

	if in.ImageGoal != "" {
		parts = append(parts, "### 이미지 목적\n"+in.ImageGoal+"\n")
	}
	if in.Subject != "" {
		parts = append(parts, "### 주요 피사체\n"+in.Subject+"\n")
	}
	if in.Style != "" {
		parts = append(parts, "### 스타일\n"+in.Style+"\n")
	}
	if in.ColorPalette != "" {
		parts = append(parts, "### 색상 팔레트\n"+in.ColorPalette+"\n")
	}
	if in.ResolutionOrRatio != "" {
		parts = append(parts, "### 해상도/비율\n"+in.ResolutionOrRatio+"\n")
	}
	if in.DetailLevel != "" {
		parts = append(parts, "### 디테일 수준\n"+DetailLevelPhrase(in.DetailLevel)+"\n")
	}
	if in.NegativePrompt != "" {
		parts = append(parts, "### 제외할 요소 (Negative Prompt)\n"+in.NegativePrompt+"\n")
	}

	// Fixed checklist, always present.
	parts = append(parts, `
### 프롬프트 구조
다음 순서로 프롬프트를 작성해 주세요:
1. **Main subject and composition**: 주요 피사체와 구도
2. **Style and mood**: 스타일과 분위기
3. **Color palette**: 색상 팔레트
4. **Lighting and background**: 조명과 배경
5. **Resolution / aspect ratio**: 해상도와 비율
6. **Negative prompts**: 원하지 않는 요소
`)

	return strings.Join(parts, "\n")
}
