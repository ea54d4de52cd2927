package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli/formatter"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/generation"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		copyToClipboard bool
		saveTitle       string
		saveNotes       string

		mode           string
		format         string
		sources        bool
		selfCheck      bool
		subject        string
		majorType      string
		grade          string
		professorStyle string
		userMajor      string
		interests      string
		styleSample    string
		deadlineType   string
		deadline       string
		regulation     string
		model          string
		modelOther     string
		explainLang    string
		outputLang     string
		difficulty     string

		stageResearch  bool
		stageOutline   bool
		stageFullWrite bool

		attachment string

		topic       string
		task        string
		rubric      string
		scope       string
		sourceTypes string
		structure   string
		words       string
		tone        string

		examType    string
		notesText   string
		summaryType string

		language    string
		environment string
		feature     string
		currentCode string
		errorMsg    string
		goal        string
		writeMode   string

		idea       string
		references string
		keywords   string

		docType         string
		recipient       string
		coreMessage     string
		experience      string
		existingDraft   string
		companyResearch bool
		emailLength     string

		imageType     string
		serviceName   string
		tagline       string
		styleKeywords string
		reference     string
		preserve      string
		platform      string
		promptMode    string
		bothLanguages bool
	)

	cmd := &cobra.Command{
		Use:   "generate CATEGORY",
		Short: "Generate a prompt for one of the six task categories",
		Long: "Generate a structured AI prompt non-interactively. CATEGORY is one of: " +
			"report, exam, coding, research, career, image.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := strings.ToLower(args[0])
			if !domain.ValidTabTypes[category] {
				return fmt.Errorf("unknown category %q (expected report|exam|coding|research|career|image)", category)
			}

			state := app.initialState()
			state.ActiveTab = domain.TabType(category)

			changed := cmd.Flags().Changed

			// Common settings.
			if changed("mode") {
				state.Common.Mode = domain.Mode(mode)
			}
			if changed("format") {
				state.Common.ResultFormat = domain.ResultFormat(format)
			}
			if changed("sources") {
				state.Common.IncludeSources = sources
			}
			if changed("self-check") {
				state.Common.IncludeSelfCheck = selfCheck
			}
			if changed("subject") {
				state.Common.SubjectName = subject
			}
			if changed("major-type") {
				state.Common.MajorType = domain.MajorType(majorType)
			}
			if changed("grade") {
				state.Common.GradeLevel = domain.GradeLevel(grade)
			}
			if changed("professor-style") {
				state.Common.ProfessorStyle = domain.ProfessorStyle(professorStyle)
			}
			if changed("major") {
				state.Common.UserMajor = userMajor
			}
			if changed("interests") {
				state.Common.InterestAreas = interests
			}
			if changed("style-sample") {
				state.Common.WritingStyleSample = styleSample
			}
			if changed("deadline-type") {
				state.Common.DeadlineType = domain.DeadlineType(deadlineType)
			}
			if changed("deadline") {
				state.Common.DeadlineValue = deadline
			}
			if changed("regulation") {
				state.Common.AIRegulation = regulation
				state.Common.IncludeRegulation = true
			}
			if changed("model") {
				state.Common.TargetModel = domain.TargetModel(model)
			}
			if changed("model-other") {
				state.Common.TargetModelOther = modelOther
			}
			if changed("explain-lang") {
				state.Common.ExplanationLanguage = domain.Language(explainLang)
			}
			if changed("output-lang") {
				state.Common.OutputLanguage = domain.Language(outputLang)
			}
			if changed("difficulty") {
				state.Common.DifficultyLevel = domain.DifficultyLevel(difficulty)
			}

			// Stage toggles replace the defaults wholesale when any is given.
			if changed("research") || changed("outline") || changed("full-write") {
				state.Stages = domain.StageSelection{
					Research:  stageResearch,
					Outline:   stageOutline,
					FullWrite: stageFullWrite,
				}
			}

			if changed("attachment") {
				state.Attachment = domain.FileAttachment{HasAttachment: true, Description: attachment}
			}

			applyCategoryFlags := func() {
				switch state.ActiveTab {
				case domain.TabReport:
					if changed("task") {
						state.Report.TaskDescription = task
					}
					if changed("topic") {
						state.Report.Topic = topic
					}
					if changed("rubric") {
						state.Report.Rubric = rubric
					}
					if changed("scope") {
						state.Report.ResearchScope = scope
					}
					if changed("source-types") {
						state.Report.SourceTypes = sourceTypes
					}
					if changed("structure") {
						state.Report.OutlineStructure = structure
					}
					if changed("words") {
						state.Report.WordCountPreset = "other"
						state.Report.WordCountOther = words
					}
					if changed("tone") {
						state.Report.Tone = domain.ReportTone(tone)
					}

				case domain.TabExam:
					if changed("scope") {
						state.Exam.ExamScope = scope
					}
					if changed("exam-type") {
						state.Exam.ExamType = examType
					}
					if changed("notes-text") {
						state.Exam.NotesText = notesText
					}
					if changed("summary-type") {
						state.Exam.SummaryType = summaryType
					}
					if changed("words") {
						state.Exam.WordCountPreset = "other"
						state.Exam.WordCountOther = words
					}

				case domain.TabCoding:
					if changed("language") {
						state.Coding.Language = language
					}
					if changed("environment") {
						state.Coding.Environment = environment
					}
					if changed("feature") {
						state.Coding.FeatureDescription = feature
					}
					if changed("code") {
						state.Coding.CurrentCode = currentCode
					}
					if changed("error") {
						state.Coding.ErrorMessage = errorMsg
					}
					if changed("goal") {
						state.Coding.Goal = goal
					}
					if changed("write-mode") {
						state.Coding.WriteMode = writeMode
					}
					if changed("words") {
						state.Coding.WordCountPreset = "other"
						state.Coding.WordCountOther = words
					}

				case domain.TabResearch:
					if changed("topic") {
						state.Research.ResearchTopic = topic
					}
					if changed("idea") {
						state.Research.CurrentIdea = idea
					}
					if changed("references") {
						state.Research.ReferenceSummary = references
					}
					if changed("keywords") {
						state.Research.LiteratureKeywords = keywords
					}
					if changed("structure") {
						state.Research.OutlineStructure = structure
					}
					if changed("words") {
						state.Research.WordCountPreset = "other"
						state.Research.WordCountOther = words
					}

				case domain.TabCareer:
					if changed("doc-type") {
						state.Career.DocumentType = domain.CareerDocumentType(docType)
						if state.Career.DocumentType == domain.DocCoverLetter {
							state.Career.OutlineStructure = "cover-letter"
						}
					}
					if changed("recipient") {
						state.Career.RecipientInfo = recipient
					}
					if changed("message") {
						state.Career.CoreMessage = coreMessage
					}
					if changed("experience") {
						state.Career.Experience = experience
					}
					if changed("draft") {
						state.Career.ExistingDraft = existingDraft
					}
					if changed("company-research") {
						state.Career.CompanyResearchMode = companyResearch
					}
					if changed("email-length") {
						state.Career.EmailLength = emailLength
					}
					if changed("words") {
						state.Career.CoverLetterWordCount = "other"
						state.Career.CoverLetterWordCountOther = words
					}

				case domain.TabImage:
					if changed("image-type") {
						state.Image.ImageType = imageType
					}
					if changed("service") {
						state.Image.ServiceName = serviceName
					}
					if changed("tagline") {
						state.Image.Tagline = tagline
					}
					if changed("style-keywords") {
						state.Image.StyleKeywords = styleKeywords
					}
					if changed("reference") {
						state.Image.ReferenceDescription = reference
					}
					if changed("preserve") {
						state.Image.PreserveElements = preserve
					}
					if changed("platform") {
						state.Image.Platform = platform
					}
					if changed("prompt-mode") {
						state.Image.PromptMode = promptMode
					}
					if changed("both-languages") {
						state.Image.IncludeBothLanguages = bothLanguages
					}
				}
			}
			applyCategoryFlags()

			prompt := generation.Generate(state)
			fmt.Println(prompt)

			if copyToClipboard {
				if err := app.Clipboard.Write(prompt); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(fmt.Sprintf("clipboard unavailable: %v", err)))
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Copied to clipboard."))
				}
			}

			if saveTitle != "" {
				p, err := app.Library.Save(context.Background(), saveTitle, saveNotes, state.ActiveTab, prompt)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved as %q (%s)\n", p.Title, p.ID)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&copyToClipboard, "copy", false, "Copy the generated prompt to the clipboard")
	f.StringVar(&saveTitle, "save", "", "Save the generated prompt under TITLE")
	f.StringVar(&saveNotes, "notes", "", "Notes stored alongside --save")

	f.StringVar(&mode, "mode", "", "Response mode (learning|task)")
	f.StringVar(&format, "format", "", "Result format (outline|full)")
	f.BoolVar(&sources, "sources", false, "Ask for source and reference suggestions")
	f.BoolVar(&selfCheck, "self-check", true, "Ask for a self-review pass before answering")
	f.StringVar(&subject, "subject", "", "Course or subject name")
	f.StringVar(&majorType, "major-type", "", "Course type (major|general|other)")
	f.StringVar(&grade, "grade", "", "Grade level (1|2|3|4|graduate|other)")
	f.StringVar(&professorStyle, "professor-style", "", "Grading style (strict|flexible|unknown)")
	f.StringVar(&userMajor, "major", "", "Your major")
	f.StringVar(&interests, "interests", "", "Interest areas")
	f.StringVar(&styleSample, "style-sample", "", "Writing style sample to imitate")
	f.StringVar(&deadlineType, "deadline-type", "", "Deadline kind (assignment|exam|other)")
	f.StringVar(&deadline, "deadline", "", "Time remaining, e.g. \"3일\"")
	f.StringVar(&regulation, "regulation", "", "School AI usage regulation to respect")
	f.StringVar(&model, "model", "", "Target model (chatgpt|gemini|other)")
	f.StringVar(&modelOther, "model-other", "", "Target model name when --model=other")
	f.StringVar(&explainLang, "explain-lang", "", "Explanation language (korean|english|mixed|other)")
	f.StringVar(&outputLang, "output-lang", "", "Output language (korean|english|mixed|other)")
	f.StringVar(&difficulty, "difficulty", "", "Difficulty (high-school|undergraduate|graduate|expert)")

	f.BoolVar(&stageResearch, "research", false, "Enable the research stage")
	f.BoolVar(&stageOutline, "outline", false, "Enable the outline stage")
	f.BoolVar(&stageFullWrite, "full-write", false, "Enable the full-write stage")

	f.StringVar(&attachment, "attachment", "", "Description of an already-uploaded file")

	f.StringVar(&topic, "topic", "", "Topic (report, research)")
	f.StringVar(&task, "task", "", "Assignment description (report)")
	f.StringVar(&rubric, "rubric", "", "Grading rubric (report)")
	f.StringVar(&scope, "scope", "", "Research scope (report) / exam scope (exam)")
	f.StringVar(&sourceTypes, "source-types", "", "Preferred source types (report)")
	f.StringVar(&structure, "structure", "", "Outline structure preset")
	f.StringVar(&words, "words", "", "Word count target")
	f.StringVar(&tone, "tone", "", "Tone (academic|report|presentation|casual; report only)")

	f.StringVar(&examType, "exam-type", "", "Exam format, e.g. 객관식 (exam)")
	f.StringVar(&notesText, "notes-text", "", "Lecture notes text (exam)")
	f.StringVar(&summaryType, "summary-type", "", "Summary sheet style (exam)")

	f.StringVar(&language, "language", "", "Programming language (coding)")
	f.StringVar(&environment, "environment", "", "Runtime environment (coding)")
	f.StringVar(&feature, "feature", "", "Feature to implement (coding)")
	f.StringVar(&currentCode, "code", "", "Current code (coding)")
	f.StringVar(&errorMsg, "error", "", "Error message (coding)")
	f.StringVar(&goal, "goal", "", "Deliverable kind: script|app|library (coding)")
	f.StringVar(&writeMode, "write-mode", "", "minimal-code|explanation (coding)")

	f.StringVar(&idea, "idea", "", "Current idea or hypothesis (research)")
	f.StringVar(&references, "references", "", "Summary of references in hand (research)")
	f.StringVar(&keywords, "keywords", "", "Literature search keywords (research)")

	f.StringVar(&docType, "doc-type", "", "Document kind (career): professor-email|internship|company-inquiry|cover-letter")
	f.StringVar(&recipient, "recipient", "", "Recipient info (career)")
	f.StringVar(&coreMessage, "message", "", "Core message (career)")
	f.StringVar(&experience, "experience", "", "Relevant experience (career)")
	f.StringVar(&existingDraft, "draft", "", "Existing draft to improve (career)")
	f.BoolVar(&companyResearch, "company-research", false, "Research the company first (career)")
	f.StringVar(&emailLength, "email-length", "", "Email length: short|medium|long (career)")

	f.StringVar(&imageType, "image-type", "", "Image kind (image): logo|app-ui|poster|thumbnail|illustration")
	f.StringVar(&serviceName, "service", "", "Service or project name (image)")
	f.StringVar(&tagline, "tagline", "", "Tagline text (image)")
	f.StringVar(&styleKeywords, "style-keywords", "", "Style keywords (image)")
	f.StringVar(&reference, "reference", "", "Reference image description (image)")
	f.StringVar(&preserve, "preserve", "", "Elements that must be preserved (image)")
	f.StringVar(&platform, "platform", "", "Target platform or placement (image)")
	f.StringVar(&promptMode, "prompt-mode", "", "outline|full (image)")
	f.BoolVar(&bothLanguages, "both-languages", true, "Emit the image prompt in Korean and English (image)")

	return cmd
}
