package sqlinline

const QInsertHistoryEntry = `--sql ea51b985-d44d-4932-b178-c078e43df8f2
insert into generation_history(
  id,
  generation_id,
  role,
  content,
  image_urls,
  created_at
) values (
  gen_random_uuid(),
  $1::uuid,
  $2::text,
  $3::text,
  $4::text[],
  now()
) returning id, created_at;
`

const QSelectHistoryForGeneration = `--sql f8f139bb-45dd-4c33-8676-08ce82de1e41
select id, generation_id, role, content, coalesce(image_urls, '{}'::text[]), created_at
from generation_history
where generation_id = $1::uuid
order by created_at asc;
`
