package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Имена встроенных шаблонов
const (
	TemplatePaymentApproved = "payment_approved"
	TemplatePaymentRejected = "payment_rejected"
)

// Встроенные шаблоны уведомлений о проверке оплаты
var builtinTemplates = map[string]string{
	TemplatePaymentApproved: `<html><body>
<p>Hello {{.Name}},</p>
<p>Your payment has been <b>approved</b>. Your {{.PlanName}} subscription is active from {{.StartDate}} to {{.EndDate}}.</p>
<p>Transaction ID: {{.TxnID}}</p>
</body></html>`,
	TemplatePaymentRejected: `<html><body>
<p>Hello {{.Name}},</p>
<p>Your payment proof was <b>rejected</b>.</p>
{{if .Note}}<p>Reason: {{.Note}}</p>{{end}}
<p>Please submit a new payment proof.</p>
</body></html>`,
}

// TemplateManager управляет шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// TemplateNames возвращает список имен загруженных шаблонов
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}

	return names
}
