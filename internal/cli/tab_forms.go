package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// tabForm returns the edit form for the given category, writing
// directly into the matching slice of state.Form.
func tabForm(state *SharedState, tab domain.TabType) *huh.Form {
	switch tab {
	case domain.TabReport:
		return reportForm(&state.Form.Report)
	case domain.TabExam:
		return examForm(&state.Form.Exam)
	case domain.TabCoding:
		return codingForm(&state.Form.Coding)
	case domain.TabResearch:
		return researchForm(&state.Form.Research)
	case domain.TabCareer:
		return careerForm(&state.Form.Career)
	case domain.TabImage:
		return imageForm(&state.Form.Image)
	}
	return nil
}

func reportForm(d *domain.ReportTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("과제 설명").
				Placeholder("교수님이 내준 과제 내용을 그대로 붙여넣어도 됩니다").
				Value(&d.TaskDescription),
			huh.NewInput().
				Title("주제").
				Value(&d.Topic),
			huh.NewText().
				Title("채점 기준 (선택)").
				Value(&d.Rubric),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("조사 범위 (선택)").
				Value(&d.ResearchScope),
			huh.NewInput().
				Title("선호 자료 유형 (선택)").
				Placeholder("예: 학술 논문, 단행본").
				Value(&d.SourceTypes),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("개요 구조").
				Options(
					huh.NewOption("3단락", "3-paragraph"),
					huh.NewOption("5단락", "5-paragraph"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.OutlineStructure),
			huh.NewInput().
				Title("개요 구조 직접 입력").
				Value(&d.OutlineOther),
			huh.NewSelect[string]().
				Title("분량").
				Options(
					huh.NewOption("300자 내외", "300"),
					huh.NewOption("800자 내외", "800"),
					huh.NewOption("1500자 내외", "1500"),
					huh.NewOption("3000자 내외", "3000"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.WordCountPreset),
			huh.NewInput().
				Title("분량 직접 입력").
				Value(&d.WordCountOther),
			huh.NewSelect[domain.ReportTone]().
				Title("문체").
				Options(
					huh.NewOption("격식 있는 학술 문체", domain.ToneAcademic),
					huh.NewOption("보고서 문체", domain.ToneReport),
					huh.NewOption("발표용 문체", domain.TonePresentation),
					huh.NewOption("편안한 문체", domain.ToneCasual),
				).
				Value(&d.Tone),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

func examForm(d *domain.ExamTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("시험 범위").
				Placeholder("예: 3장~5장").
				Value(&d.ExamScope),
			huh.NewInput().
				Title("시험 유형").
				Placeholder("예: 객관식, 단답형, 서술형").
				Value(&d.ExamType),
			huh.NewText().
				Title("강의 노트 (선택)").
				Value(&d.NotesText),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("요약본 형태").
				Options(
					huh.NewOption("개념 목록", "concept-list"),
					huh.NewOption("개념 + 예시 + 함정", "concept-example-trap"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.SummaryType),
			huh.NewInput().
				Title("요약본 형태 직접 입력").
				Value(&d.SummaryOther),
			huh.NewSelect[string]().
				Title("분량").
				Options(
					huh.NewOption("200자 내외", "200"),
					huh.NewOption("400자 내외", "400"),
					huh.NewOption("600자 내외", "600"),
					huh.NewOption("개조식", "bullet"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.WordCountPreset),
			huh.NewInput().
				Title("분량 직접 입력").
				Value(&d.WordCountOther),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

func codingForm(d *domain.CodingTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("프로그래밍 언어").
				Options(
					huh.NewOption("Python", "python"),
					huh.NewOption("JavaScript", "javascript"),
					huh.NewOption("C/C++", "c-cpp"),
					huh.NewOption("MATLAB", "matlab"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.Language),
			huh.NewInput().
				Title("언어 직접 입력").
				Value(&d.LanguageOther),
			huh.NewInput().
				Title("실행 환경 (선택)").
				Placeholder("예: 학교 서버, Colab").
				Value(&d.Environment),
		),
		huh.NewGroup(
			huh.NewText().
				Title("구현할 기능").
				Value(&d.FeatureDescription),
			huh.NewText().
				Title("현재 코드 (선택)").
				Value(&d.CurrentCode),
			huh.NewText().
				Title("에러 메시지 (선택)").
				Value(&d.ErrorMessage),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("목표물").
				Options(
					huh.NewOption("스크립트", "script"),
					huh.NewOption("애플리케이션", "app"),
					huh.NewOption("라이브러리", "library"),
				).
				Value(&d.Goal),
			huh.NewSelect[string]().
				Title("작성 방식").
				Options(
					huh.NewOption("코드 위주", "minimal-code"),
					huh.NewOption("설명 위주", "explanation"),
				).
				Value(&d.WriteMode),
			huh.NewSelect[string]().
				Title("분량").
				Options(
					huh.NewOption("300자 내외", "300"),
					huh.NewOption("600자 내외", "600"),
					huh.NewOption("1000자 내외", "1000"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.WordCountPreset),
			huh.NewInput().
				Title("분량 직접 입력").
				Value(&d.WordCountOther),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

func researchForm(d *domain.ResearchTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("연구 주제").
				Value(&d.ResearchTopic),
			huh.NewText().
				Title("현재 아이디어 (선택)").
				Value(&d.CurrentIdea),
			huh.NewText().
				Title("보유 자료 요약 (선택)").
				Value(&d.ReferenceSummary),
			huh.NewInput().
				Title("문헌 검색 키워드 (선택)").
				Value(&d.LiteratureKeywords),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("개요 구조").
				Options(
					huh.NewOption("연구계획서 구조", "proposal"),
					huh.NewOption("문헌 리뷰 구조", "review"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.OutlineStructure),
			huh.NewInput().
				Title("개요 구조 직접 입력").
				Value(&d.OutlineOther),
			huh.NewSelect[string]().
				Title("분량").
				Options(
					huh.NewOption("500자 내외", "500"),
					huh.NewOption("1000자 내외", "1000"),
					huh.NewOption("1500자 내외", "1500"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.WordCountPreset),
			huh.NewInput().
				Title("분량 직접 입력").
				Value(&d.WordCountOther),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

func careerForm(d *domain.CareerTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.CareerDocumentType]().
				Title("문서 종류").
				Options(
					huh.NewOption("교수님께 이메일", domain.DocProfessorEmail),
					huh.NewOption("인턴 지원", domain.DocInternship),
					huh.NewOption("기업 문의", domain.DocCompanyInquiry),
					huh.NewOption("자기소개서", domain.DocCoverLetter),
				).
				Value(&d.DocumentType),
			huh.NewInput().
				Title("받는 사람 정보").
				Placeholder("예: 데이터구조 담당 김OO 교수님").
				Value(&d.RecipientInfo),
			huh.NewText().
				Title("핵심 메시지").
				Value(&d.CoreMessage),
		),
		huh.NewGroup(
			huh.NewText().
				Title("관련 경험 (선택)").
				Value(&d.Experience),
			huh.NewText().
				Title("기존 초안 (선택)").
				Value(&d.ExistingDraft),
			huh.NewConfirm().
				Title("회사 정보 조사 먼저").
				Value(&d.CompanyResearchMode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("이메일 분량").
				Options(
					huh.NewOption("짧게", "short"),
					huh.NewOption("보통", "medium"),
					huh.NewOption("길게", "long"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.EmailLength),
			huh.NewInput().
				Title("이메일 분량 직접 입력").
				Value(&d.EmailLengthOther),
			huh.NewSelect[string]().
				Title("자기소개서 분량").
				Options(
					huh.NewOption("500자", "500"),
					huh.NewOption("800자", "800"),
					huh.NewOption("1000자", "1000"),
					huh.NewOption("1500자", "1500"),
					huh.NewOption("직접 입력", "other"),
				).
				Value(&d.CoverLetterWordCount),
			huh.NewInput().
				Title("자기소개서 분량 직접 입력").
				Value(&d.CoverLetterWordCountOther),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}

func imageForm(d *domain.ImageTabData) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("이미지 종류").
				Options(
					huh.NewOption("로고", "logo"),
					huh.NewOption("앱 UI", "app-ui"),
					huh.NewOption("포스터", "poster"),
					huh.NewOption("썸네일", "thumbnail"),
					huh.NewOption("일러스트", "illustration"),
				).
				Value(&d.ImageType),
			huh.NewInput().
				Title("서비스/프로젝트 이름").
				Value(&d.ServiceName),
			huh.NewInput().
				Title("태그라인 (선택)").
				Value(&d.Tagline),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("스타일 키워드 (선택)").
				Placeholder("예: 미니멀, 파스텔톤").
				Value(&d.StyleKeywords),
			huh.NewText().
				Title("참고 이미지 설명 (선택)").
				Value(&d.ReferenceDescription),
			huh.NewInput().
				Title("유지해야 할 요소 (선택)").
				Value(&d.PreserveElements),
			huh.NewInput().
				Title("사용처 (선택)").
				Placeholder("예: 인스타그램 게시물").
				Value(&d.Platform),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("프롬프트 상세도").
				Options(
					huh.NewOption("간단히", "outline"),
					huh.NewOption("상세하게", "full"),
				).
				Value(&d.PromptMode),
			huh.NewConfirm().
				Title("한국어+영어 프롬프트 함께").
				Value(&d.IncludeBothLanguages),
		),
	).WithTheme(paletteHuhTheme()).WithShowHelp(false)
}
